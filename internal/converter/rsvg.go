package converter

import (
	"context"
	"os/exec"
	"strconv"
	"time"
)

// Rsvg shells out to rsvg-convert (librsvg). It is the preferred backend:
// fast and faithful to the SVG spec.
type Rsvg struct {
	Timeout time.Duration
}

func (r *Rsvg) Name() string { return "rsvg-convert" }

func (r *Rsvg) Available() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

func (r *Rsvg) Convert(ctx context.Context, req Request) error {
	return runTool(ctx, r.Timeout, "rsvg-convert",
		"-w", strconv.Itoa(req.Width),
		"-h", strconv.Itoa(req.Height),
		"-o", req.Output,
		req.Input,
	)
}
