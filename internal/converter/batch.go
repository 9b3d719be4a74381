package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds parallel renders in RenderSet. External tools
// spawn a process per size; four at a time keeps small machines responsive.
const batchConcurrency = 4

// RenderResult records one rendered size of an icon set.
type RenderResult struct {
	Size      int
	Output    string
	Converter string
}

// RenderSet renders input at every requested size, writing square PNGs
// named <base>_<size>.png next to base. Sizes render concurrently; the
// first failure cancels the rest. Results are returned sorted by size.
func (c *Chain) RenderSet(ctx context.Context, input, base string, sizes []int) ([]RenderResult, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes requested")
	}

	base = strings.TrimSuffix(base, filepath.Ext(base))
	results := make([]RenderResult, len(sizes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			out := fmt.Sprintf("%s_%d.png", base, size)
			used, err := c.Convert(ctx, Request{
				Input:  input,
				Output: out,
				Width:  size,
				Height: size,
			})
			if err != nil {
				return fmt.Errorf("size %d: %w", size, err)
			}
			results[i] = RenderResult{Size: size, Output: out, Converter: used}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Size < results[j].Size })
	return results, nil
}
