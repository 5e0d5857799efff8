// Package ports define contratos hacia infraestructura que necesitan los
// casos de uso (DIP): el dominio no conoce disco ni red.
package ports

import "io"

// ImageStore guarda y elimina imágenes de producto. La implementación local
// escribe bajo el directorio de media configurado.
type ImageStore interface {
	// Save persiste el contenido y devuelve la ruta relativa almacenable.
	Save(name string, r io.Reader) (string, error)
	// Remove elimina la imagen; una ruta vacía o inexistente no es error.
	Remove(path string) error
}
