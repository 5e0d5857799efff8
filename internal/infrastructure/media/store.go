// Package media implementa el almacenamiento de imágenes de producto en disco.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/ports"
)

var _ ports.ImageStore = (*DiskStore)(nil)

// DiskStore guarda las imágenes bajo un directorio base. Las rutas devueltas
// son relativas a ese directorio, tal como se persisten en productos.imagen.
type DiskStore struct {
	baseDir string
}

// NewDiskStore crea el store y asegura que el directorio exista.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de medios: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Save escribe el contenido con un nombre único (uuid + extensión original)
// y devuelve la ruta relativa.
func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	rel := uuid.New().String() + ext
	full := filepath.Join(s.baseDir, rel)

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return rel, nil
}

// Remove borra una imagen por su ruta relativa. Ignora la ausencia del archivo.
func (s *DiskStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	full := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}

// Dir devuelve el directorio base (para servirlo como estático).
func (s *DiskStore) Dir() string {
	return s.baseDir
}
