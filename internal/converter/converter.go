// Package converter rasterizes SVG icons to PNG by delegating to the first
// working converter from an ordered fallback chain: rsvg-convert, the
// in-process oksvg/rasterx renderer, then ImageMagick. Each candidate is
// attempted exactly once; the order is fixed.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// ErrNoConverter is returned when every candidate in the chain has been
// exhausted without producing the output file.
var ErrNoConverter = errors.New("no suitable SVG to PNG converter found (install rsvg-convert or ImageMagick)")

// Request describes a single SVG to PNG conversion.
type Request struct {
	Input  string // source SVG path
	Output string // destination PNG path
	Width  int
	Height int
}

// Converter is a single SVG to PNG conversion backend.
type Converter interface {
	// Name identifies the backend in status messages.
	Name() string
	// Available reports whether the backend can run on this host.
	Available() bool
	// Convert rasterizes req.Input to req.Output at the requested size.
	Convert(ctx context.Context, req Request) error
}

// Chain tries each converter once, in order, until one produces the output
// file. Per-converter failures are swallowed; only total failure surfaces.
type Chain struct {
	converters []Converter
	log        *zap.Logger
}

// NewChain builds a chain over the given converters in the given order.
func NewChain(log *zap.Logger, converters ...Converter) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{converters: converters, log: log}
}

// DefaultChain returns the standard fallback order: rsvg-convert first
// (fastest), then the in-process renderer, then ImageMagick as a last
// resort. toolTimeout bounds each external tool invocation.
func DefaultChain(log *zap.Logger, toolTimeout time.Duration) *Chain {
	return NewChain(log,
		&Rsvg{Timeout: toolTimeout},
		&Rasterx{},
		&Magick{Timeout: toolTimeout},
	)
}

// Converters returns the chain's candidates in attempt order.
func (c *Chain) Converters() []Converter {
	return c.converters
}

// Convert runs the fallback sequence for req and returns the name of the
// converter that produced the output. A converter that is unavailable or
// fails is skipped silently; the next candidate is tried. After a converter
// claims success, the output file is stat'd — the existence check is
// authoritative over the converter's claim.
func (c *Chain) Convert(ctx context.Context, req Request) (string, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return "", fmt.Errorf("invalid target size %dx%d", req.Width, req.Height)
	}

	for _, conv := range c.converters {
		if !conv.Available() {
			c.log.Debug("converter unavailable, trying next",
				zap.String("converter", conv.Name()))
			continue
		}
		if err := conv.Convert(ctx, req); err != nil {
			c.log.Debug("converter failed, trying next",
				zap.String("converter", conv.Name()),
				zap.Error(err))
			continue
		}
		if _, err := os.Stat(req.Output); err != nil {
			return "", fmt.Errorf("%s reported success but %s is missing: %w",
				conv.Name(), req.Output, err)
		}
		c.log.Info("conversion succeeded",
			zap.String("converter", conv.Name()),
			zap.String("output", req.Output))
		return conv.Name(), nil
	}

	return "", ErrNoConverter
}
