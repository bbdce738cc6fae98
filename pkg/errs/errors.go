package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Error interno del servidor")
	ErrClient         = errors.New("Parámetros de búsqueda inválidos")
	ErrNotFound       = errors.New("Producto no encontrado")
)

// Checked in order; the first matching sentinel wins.
var errorStatusCodes = []struct {
	sentinel   error
	statusCode int
}{
	{ErrNotFound, ErrStatusNotFound},
	{ErrClient, ErrStatusClient},
	{ErrInternalServer, ErrStatusInternalServer},
}

// ProductNotFound builds the not-found error for one product id. The
// message embeds the id and the error still matches ErrNotFound through
// errors.Is.
func ProductNotFound(id string) error {
	return &productNotFoundError{id: id}
}

type productNotFoundError struct {
	id string
}

func (e *productNotFoundError) Error() string {
	return "Producto no encontrado: " + e.id
}

func (e *productNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func GetErrorStatusCode(err error) int {
	for _, entry := range errorStatusCodes {
		if errors.Is(err, entry.sentinel) {
			return entry.statusCode
		}
	}
	return ErrStatusInternalServer
}
