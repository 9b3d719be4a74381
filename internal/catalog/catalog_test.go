package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, map[int]string{
		1024: filepath.Join(dir, "robot_icon_1024.png"),
		64:   filepath.Join(dir, "robot_icon_64.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SetName, "Contents.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var c struct {
		Images []Image `json:"images"`
		Info   Info    `json:"info"`
	}
	require.NoError(t, json.Unmarshal(data, &c))

	require.Len(t, c.Images, 2)
	assert.Equal(t, "robot_icon_64.png", c.Images[0].Filename)
	assert.Equal(t, "64x64", c.Images[0].Size)
	assert.Equal(t, "robot_icon_1024.png", c.Images[1].Filename)
	assert.Equal(t, "1024x1024", c.Images[1].Size)
	assert.Equal(t, "icongen", c.Info.Author)
	assert.Equal(t, 1, c.Info.Version)
}

func TestWrite_NoImages(t *testing.T) {
	_, err := Write(t.TempDir(), nil)
	require.Error(t, err)
}
