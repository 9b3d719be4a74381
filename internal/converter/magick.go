package converter

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Magick shells out to ImageMagick. Version 7 installs a single `magick`
// binary; older installs ship the legacy `convert` name. Both accept the
// same argument shape, so the first one found on PATH is used.
type Magick struct {
	Timeout time.Duration
}

func (m *Magick) Name() string { return "imagemagick" }

func (m *Magick) binary() (string, error) {
	if path, err := exec.LookPath("magick"); err == nil {
		return path, nil
	}
	return exec.LookPath("convert")
}

func (m *Magick) Available() bool {
	_, err := m.binary()
	return err == nil
}

func (m *Magick) Convert(ctx context.Context, req Request) error {
	binary, err := m.binary()
	if err != nil {
		return fmt.Errorf("imagemagick not installed: %w", err)
	}
	return runTool(ctx, m.Timeout, binary,
		"-background", "transparent",
		"-size", fmt.Sprintf("%dx%d", req.Width, req.Height),
		req.Input,
		req.Output,
	)
}
