package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterStatic serves the prebuilt single-page app bundle. Unknown
// non-API paths fall back to index.html so client-side routing works.
func RegisterStatic(r *gin.Engine, staticDir string) {
	indexPath := filepath.Join(staticDir, "index.html")

	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(indexPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading the page"})
			return
		}
		c.File(indexPath)
	})

	if assets := filepath.Join(staticDir, "assets"); dirExists(assets) {
		r.Static("/assets", assets)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if _, err := os.Stat(indexPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading the page"})
			return
		}
		c.File(indexPath)
	})
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
