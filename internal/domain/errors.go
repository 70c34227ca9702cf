package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Toda condición de "no encontrado" envuelve ErrNotFound para que la capa HTTP la trate igual.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
)
