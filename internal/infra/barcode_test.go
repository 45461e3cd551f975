package infra

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	r := NewBarcodeRenderer(dir)

	url, err := r.Render("123456789012")
	require.NoError(t, err)
	assert.Equal(t, "/static/barcodes/123456789012.png", url)

	f, err := os.Open(filepath.Join(dir, "123456789012.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderExists(t *testing.T) {
	r := NewBarcodeRenderer(t.TempDir())

	assert.False(t, r.Exists("123456789012"))
	_, err := r.Render("123456789012")
	require.NoError(t, err)
	assert.True(t, r.Exists("123456789012"))
}

func TestRemove_Idempotente(t *testing.T) {
	r := NewBarcodeRenderer(t.TempDir())

	_, err := r.Render("123456789012")
	require.NoError(t, err)

	require.NoError(t, r.Remove("123456789012"))
	assert.False(t, r.Exists("123456789012"))

	// Removing twice is not an error.
	require.NoError(t, r.Remove("123456789012"))
}
