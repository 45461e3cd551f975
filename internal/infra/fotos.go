package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Photo filename extensions accepted before the content is even sniffed.
var extensionesPermitidas = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// FotoStore persists uploaded device photos. Filenames are namespaced with a
// random UUID prefix so concurrent uploads of equally-named files never
// collide, and every stored photo is re-encoded as JPEG by the imaging
// pipeline.
type FotoStore struct {
	dir string
}

func NewFotoStore(dir string) *FotoStore {
	return &FotoStore{dir: dir}
}

// Guardar validates, processes and stores an uploaded photo, returning its
// public URL path.
func (s *FotoStore) Guardar(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		return "", fmt.Errorf("foto: extension no permitida: %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("foto: abrir archivo: %w", err)
	}
	defer src.Close()

	data, err := processImage(src)
	if err != nil {
		return "", fmt.Errorf("foto: procesar imagen: %w", err)
	}

	nombre := fmt.Sprintf("%s_%s.jpg", strings.ReplaceAll(uuid.New().String(), "-", ""), stem(fh.Filename))
	if err := os.WriteFile(filepath.Join(s.dir, nombre), data, 0o644); err != nil {
		return "", fmt.Errorf("foto: guardar: %w", err)
	}
	return "/static/uploads/" + nombre, nil
}

// Eliminar removes a stored photo given its public URL path. A missing file
// is not an error.
func (s *FotoStore) Eliminar(fotoURL string) error {
	nombre := filepath.Base(fotoURL)
	if nombre == "." || nombre == "/" || nombre == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, nombre))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// stem returns the filename without directory and extension, reduced to a
// safe character set.
func stem(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "foto"
	}
	return b.String()
}
