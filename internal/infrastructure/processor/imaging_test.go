package processor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/andreyxaxa/Image-Hosting/pkg/types/errs"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.PNG)
	require.NoError(t, err)

	return buf.Bytes()
}

func decodeThumb(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return imaging.Clone(img)
}

func assertWhite(t *testing.T, img *image.NRGBA, x, y int) {
	t.Helper()

	c := img.NRGBAAt(x, y)
	assert.GreaterOrEqual(t, int(c.R), 245, "R at (%d,%d)", x, y)
	assert.GreaterOrEqual(t, int(c.G), 245, "G at (%d,%d)", x, y)
	assert.GreaterOrEqual(t, int(c.B), 245, "B at (%d,%d)", x, y)
}

func TestThumbnail_LandscapeFitsWidth(t *testing.T) {
	p := New()

	// 512x256 red: fits to 256x128, centered with 64px white bands
	src := imaging.New(512, 256, color.NRGBA{R: 255, A: 255})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	require.Equal(t, 256, thumb.Bounds().Dx())
	require.Equal(t, 256, thumb.Bounds().Dy())

	// content region is red
	c := thumb.NRGBAAt(128, 128)
	assert.GreaterOrEqual(t, int(c.R), 200)
	assert.LessOrEqual(t, int(c.G), 80)

	// bands above and below are white
	assertWhite(t, thumb, 128, 20)
	assertWhite(t, thumb, 128, 235)
}

func TestThumbnail_PortraitFitsHeight(t *testing.T) {
	p := New()

	// 128x512 blue: fits to 64x256, centered with 96px white bands
	src := imaging.New(128, 512, color.NRGBA{B: 255, A: 255})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	require.Equal(t, 256, thumb.Bounds().Dx())
	require.Equal(t, 256, thumb.Bounds().Dy())

	c := thumb.NRGBAAt(128, 128)
	assert.GreaterOrEqual(t, int(c.B), 200)

	assertWhite(t, thumb, 20, 128)
	assertWhite(t, thumb, 235, 128)
}

func TestThumbnail_SmallSourceNotUpscaled(t *testing.T) {
	p := New()

	// 10x10 source stays 10x10, centered at (123..132)
	src := imaging.New(10, 10, color.NRGBA{R: 255, A: 255})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	require.Equal(t, 256, thumb.Bounds().Dx())
	require.Equal(t, 256, thumb.Bounds().Dy())

	c := thumb.NRGBAAt(128, 128)
	assert.GreaterOrEqual(t, int(c.R), 200)
	assert.LessOrEqual(t, int(c.G), 80)

	// anywhere outside the 10x10 patch is canvas white
	assertWhite(t, thumb, 50, 50)
	assertWhite(t, thumb, 110, 128)
	assertWhite(t, thumb, 146, 128)
}

func TestThumbnail_AlphaBlendsAgainstWhite(t *testing.T) {
	p := New()

	// half-transparent red over white: red stays saturated, green/blue
	// pick up the background
	src := imaging.New(100, 100, color.NRGBA{R: 255, A: 128})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	c := thumb.NRGBAAt(128, 128)
	assert.GreaterOrEqual(t, int(c.R), 230)
	assert.InDelta(t, 127, int(c.G), 40)
	assert.InDelta(t, 127, int(c.B), 40)
}

func TestThumbnail_FullyTransparentBecomesWhite(t *testing.T) {
	p := New()

	src := imaging.New(100, 100, color.NRGBA{})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	assertWhite(t, thumb, 128, 128)
}

func TestThumbnail_ExactFitSource(t *testing.T) {
	p := New()

	// 256x256 source covers the whole canvas, no white surround
	src := imaging.New(256, 256, color.NRGBA{G: 255, A: 255})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	thumb := decodeThumb(t, out)
	require.Equal(t, 256, thumb.Bounds().Dx())
	require.Equal(t, 256, thumb.Bounds().Dy())

	c := thumb.NRGBAAt(2, 2)
	assert.GreaterOrEqual(t, int(c.G), 200)
}

func TestThumbnail_OutputIsJPEG(t *testing.T) {
	p := New()

	src := imaging.New(64, 64, color.NRGBA{R: 255, A: 255})
	out, err := p.Thumbnail(context.Background(), encodePNG(t, src))
	require.NoError(t, err)

	_, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestThumbnail_UndecodableInput(t *testing.T) {
	p := New()

	out, err := p.Thumbnail(context.Background(), []byte("definitely not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUndecodable)
	assert.Nil(t, out)
}

func TestThumbnail_EmptyInput(t *testing.T) {
	p := New()

	out, err := p.Thumbnail(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUndecodable)
	assert.Nil(t, out)
}
