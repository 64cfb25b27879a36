package imaging

import (
	"fmt"

	"github.com/h2non/bimg"
)

// Target bounding box for uploaded images. Content is contained, never
// cropped: the aspect ratio is preserved and the remaining canvas is
// padded.
const (
	BoxWidth  = 1080
	BoxHeight = 1920
)

// Processor normalizes uploaded image buffers before they reach the
// object store. It is stateless; a zero value is ready to use.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Normalize resizes buf so it fits inside the fixed bounding box.
// Returns an error if buf is not a decodable image.
func (p *Processor) Normalize(buf []byte) ([]byte, error) {
	out, err := bimg.NewImage(buf).Process(bimg.Options{
		Width:  BoxWidth,
		Height: BoxHeight,
		Embed:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return out, nil
}
