// Package catalog emits an Xcode AppIcon.appiconset/Contents.json for a
// set of rendered PNGs, so the output can be dropped straight into an
// asset catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SetName is the directory name Xcode expects for the app icon set.
const SetName = "AppIcon.appiconset"

// Image is one entry in the icon set.
type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info identifies the generator in the catalog metadata.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Write creates dir/AppIcon.appiconset/Contents.json describing one
// universal 1x image per size. The referenced PNG files are expected to
// already exist next to it; filenames are reduced to their base name.
func Write(dir string, files map[int]string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no images for icon set")
	}

	setDir := filepath.Join(dir, SetName)
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		return "", fmt.Errorf("create icon set dir: %w", err)
	}

	c := contents{Info: Info{Author: "icongen", Version: 1}}
	for _, size := range sortedSizes(files) {
		c.Images = append(c.Images, Image{
			Filename: filepath.Base(files[size]),
			Idiom:    "universal",
			Scale:    "1x",
			Size:     fmt.Sprintf("%dx%d", size, size),
		})
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal contents: %w", err)
	}

	path := filepath.Join(setDir, "Contents.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write contents: %w", err)
	}
	return path, nil
}

func sortedSizes(files map[int]string) []int {
	sizes := make([]int, 0, len(files))
	for s := range files {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}
