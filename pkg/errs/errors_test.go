package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetErrorStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found sentinel", err: ErrNotFound, want: http.StatusNotFound},
		{name: "product not found with id", err: ProductNotFound("p-999"), want: http.StatusNotFound},
		{name: "client error", err: ErrClient, want: http.StatusBadRequest},
		{name: "wrapped client error", err: fmt.Errorf("binding: %w", ErrClient), want: http.StatusBadRequest},
		{name: "internal error", err: ErrInternalServer, want: http.StatusInternalServerError},
		{name: "unknown error defaults to 500", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorStatusCode(tt.err); got != tt.want {
				t.Errorf("GetErrorStatusCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestProductNotFound(t *testing.T) {
	err := ProductNotFound("missing")

	if err.Error() != "Producto no encontrado: missing" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("ProductNotFound should match ErrNotFound")
	}
}
