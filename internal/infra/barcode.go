package infra

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Rendered image dimensions in pixels. Wide enough for a scanner to resolve
// a 12-digit Code128 at typical label print sizes.
const (
	barcodeWidth  = 300
	barcodeHeight = 120
)

// BarcodeRenderer writes Code128 PNG images into a directory, one file per
// code, named "<codigo>.png". Rendering is best-effort: callers treat a
// failure as a missing image, never as a failed operation.
type BarcodeRenderer struct {
	dir string
}

func NewBarcodeRenderer(dir string) *BarcodeRenderer {
	return &BarcodeRenderer{dir: dir}
}

// Render encodes codigo as Code128 and writes the PNG. It returns the public
// URL path of the image.
func (r *BarcodeRenderer) Render(codigo string) (string, error) {
	bc, err := code128.Encode(codigo)
	if err != nil {
		return "", fmt.Errorf("barcode: encode %q: %w", codigo, err)
	}
	scaled, err := barcode.Scale(bc, barcodeWidth, barcodeHeight)
	if err != nil {
		return "", fmt.Errorf("barcode: scale: %w", err)
	}

	f, err := os.Create(r.path(codigo))
	if err != nil {
		return "", fmt.Errorf("barcode: create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, scaled); err != nil {
		return "", fmt.Errorf("barcode: encode png: %w", err)
	}
	return "/static/barcodes/" + codigo + ".png", nil
}

// Remove deletes the rendered image. Removing an image that is already
// absent is not an error.
func (r *BarcodeRenderer) Remove(codigo string) error {
	err := os.Remove(r.path(codigo))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether the rendered image is on disk.
func (r *BarcodeRenderer) Exists(codigo string) bool {
	_, err := os.Stat(r.path(codigo))
	return err == nil
}

func (r *BarcodeRenderer) path(codigo string) string {
	return filepath.Join(r.dir, codigo+".png")
}
