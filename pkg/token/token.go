// Package token genera los bearer tokens opacos que se guardan en la fila
// del usuario. No llevan claims: la validez se resuelve buscando el token
// en la base.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// New devuelve un token opaco nuevo (uuid v4 en hex, 32 caracteres).
func New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
