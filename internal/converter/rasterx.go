package converter

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterx renders the SVG in-process with oksvg/rasterx. It needs no
// external tools, but librsvg and ImageMagick handle more of the SVG spec,
// so it sits between them in the chain: tried when rsvg-convert is absent,
// with ImageMagick left as the last resort for SVGs oksvg cannot parse.
type Rasterx struct{}

func (r *Rasterx) Name() string { return "rasterx" }

// Available is always true: the renderer is compiled into the binary.
func (r *Rasterx) Available() bool { return true }

func (r *Rasterx) Convert(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(req.Input)
	if err != nil {
		return fmt.Errorf("open svg: %w", err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(req.Width), float64(req.Height))
	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	scanner := rasterx.NewScannerGV(req.Width, req.Height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(req.Width, req.Height, scanner), 1.0)

	return writePNG(req.Output, img)
}

// writePNG encodes img to a sibling temp file and renames it into place,
// so a failed encode never leaves a truncated output behind.
func writePNG(path string, img image.Image) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
