package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes visibles al
// usuario final se arman en la capa HTTP; aquí solo se distingue la categoría.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrForbidden          = errors.New("no autorizado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrProductLimit       = errors.New("límite de productos alcanzado")
)
