package entity

import "time"

// Category agrupa productos del catálogo. Se crea solo en el seed y no se modifica.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Products  []*Product // referencias informativas, no se persisten por este campo
}
