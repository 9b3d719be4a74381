package converter

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
  <rect width="16" height="16" fill="#e74c3c"/>
  <circle cx="8" cy="8" r="5" fill="#ffffff"/>
</svg>`

func TestRasterx_RendersToRequestedSize(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "icon.svg")
	out := filepath.Join(dir, "icon_64.png")
	require.NoError(t, os.WriteFile(in, []byte(testSVG), 0o644))

	r := &Rasterx{}
	assert.True(t, r.Available(), "in-process renderer is always available")

	err := r.Convert(context.Background(), Request{
		Input:  in,
		Output: out,
		Width:  64,
		Height: 64,
	})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())
}

func TestRasterx_RejectsMalformedSVG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.svg")
	out := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(in, []byte("<svg truncated"), 0o644))

	r := &Rasterx{}
	err := r.Convert(context.Background(), Request{
		Input: in, Output: out, Width: 64, Height: 64,
	})
	require.Error(t, err)
	assert.NoFileExists(t, out, "failed render must not leave an output behind")
}

func TestRasterx_MissingInput(t *testing.T) {
	dir := t.TempDir()
	r := &Rasterx{}
	err := r.Convert(context.Background(), Request{
		Input:  filepath.Join(dir, "absent.svg"),
		Output: filepath.Join(dir, "absent.png"),
		Width:  64,
		Height: 64,
	})
	require.Error(t, err)
}
