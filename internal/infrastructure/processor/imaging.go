package processor

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/andreyxaxa/Image-Hosting/pkg/types/errs"
	"github.com/disintegration/imaging"

	// .webp originals are on the upload allow-list; imaging itself covers
	// jpeg, png, gif and bmp.
	_ "golang.org/x/image/webp"
)

const (
	thumbWidth  = 256
	thumbHeight = 256

	jpegQuality = 85
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type ImageProcessor struct {
}

func New() *ImageProcessor {
	return &ImageProcessor{}
}

// Thumbnail renders data onto a 256x256 white canvas: the source is scaled
// down to fit the box with Lanczos resampling (never scaled up), centered,
// and alpha-blended against the background when it carries transparency.
// The result is always JPEG, quality 85.
func (p *ImageProcessor) Thumbnail(ctx context.Context, data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Thumbnail - imaging.Decode: %w: %v", errs.ErrUndecodable, err)
	}

	// Fit keeps the aspect ratio and leaves undersized sources untouched.
	fitted := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)

	canvas := imaging.New(thumbWidth, thumbHeight, white)
	canvas = imaging.OverlayCenter(canvas, fitted, 1.0)

	var buf bytes.Buffer
	err = imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Thumbnail - imaging.Encode: %w", err)
	}

	return buf.Bytes(), nil
}
