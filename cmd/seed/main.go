package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/athsb009/cloud-cdn/pkg/config"
	"github.com/athsb009/cloud-cdn/pkg/logger"
)

// Seeds a running instance with sample posts through the public API so
// the whole pipeline (normalize, S3 upload, metadata write) is
// exercised, not bypassed.
func main() {
	var (
		baseURL = flag.String("url", "", "base URL of the running server (default http://localhost:<SERVER_PORT>)")
		count   = flag.Int("count", 5, "number of sample posts to create")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	target := *baseURL
	if target == "" {
		target = "http://localhost:" + cfg.ServerPort
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	for i := 0; i < *count; i++ {
		caption := fmt.Sprintf("Sample post #%d", i+1)
		if err := createSamplePost(httpClient, target, caption, i, log); err != nil {
			log.Error("Failed to create sample post %d: %v", i+1, err)
			continue
		}
		time.Sleep(200 * time.Millisecond)
	}

	log.Info("Seeding finished")
}

func createSamplePost(httpClient *http.Client, baseURL, caption string, index int, log *logger.Logger) error {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += "/says/hello"
	}

	log.Info("Fetching cat image from %s", cataasURL)
	resp, err := httpClient.Get(cataasURL)
	if err != nil {
		return fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return fmt.Errorf("received empty image data")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", fmt.Sprintf("seed_%d.jpg", index))
	if err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return fmt.Errorf("failed to write image part: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return fmt.Errorf("failed to write caption: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/posts", &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	postResp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	defer postResp.Body.Close()

	if postResp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(postResp.Body)
		return fmt.Errorf("server returned status %d: %s", postResp.StatusCode, respBody)
	}

	log.Info("Created post: %s", caption)
	return nil
}
