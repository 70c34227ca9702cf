package dto

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Valores de paginación del listado.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest paginación por número de página (1-based).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Validate rechaza páginas no positivas, tamaños fuera de [1, MaxPageSize]
// y páginas cuyo offset no cabe en un int.
func (p PageRequest) Validate() error {
	fields := map[string]string{}
	if p.PageSize < 1 {
		fields["pageSize"] = "min=1"
	} else if p.PageSize > MaxPageSize {
		fields["pageSize"] = fmt.Sprintf("max=%d", MaxPageSize)
	}
	if p.Page < 1 {
		fields["page"] = "min=1"
	} else if _, ok := fields["pageSize"]; !ok && p.Page-1 > math.MaxInt/p.PageSize {
		fields["page"] = fmt.Sprintf("max=%d", math.MaxInt/p.PageSize+1)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Offset filas a saltar. Solo es válido tras Validate.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidationError errores de validación por campo (campo -> regla incumplida).
// Envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un error con un solo campo.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return domain.ErrInvalidInput.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }
