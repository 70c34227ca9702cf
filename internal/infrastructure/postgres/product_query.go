package postgres

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

const productSelect = `
		SELECT p.id, p.name, p.category_id, c.name, p.price, p.stock_quantity, p.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id`

var productSortColumns = map[repository.ProductSortField]string{
	repository.SortByID:       "p.id",
	repository.SortByPrice:    "p.price",
	repository.SortByName:     "p.name",
	repository.SortByCategory: "c.name",
	repository.SortByStock:    "p.stock_quantity",
}

// buildProductListQuery arma el SELECT del listado con placeholders $n.
// El orden por defecto (o por un campo desconocido) es id ascendente; el resto desempata por id.
func buildProductListQuery(f repository.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.CategoryID != nil {
		conds = append(conds, "p.category_id = "+arg(*f.CategoryID))
	}
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*f.MaxPrice))
	}
	if f.InStock != nil {
		if *f.InStock {
			conds = append(conds, "p.stock_quantity > 0")
		} else {
			conds = append(conds, "p.stock_quantity = 0")
		}
	}
	// strpos evita escapar % y _ de la entrada como haría LIKE.
	if f.Name != "" {
		conds = append(conds, "strpos(lower(p.name), lower("+arg(f.Name)+")) > 0")
	}
	if f.CategoryName != "" {
		conds = append(conds, "strpos(lower(c.name), lower("+arg(f.CategoryName)+")) > 0")
	}

	var sb strings.Builder
	sb.WriteString(productSelect)
	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	sb.WriteString("\n\t\tORDER BY ")
	column, ok := productSortColumns[f.SortBy]
	if !ok || f.SortBy == repository.SortByID {
		sb.WriteString("p.id ASC")
	} else {
		sb.WriteString(column)
		if f.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
		sb.WriteString(", p.id ASC")
	}

	if f.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(f.Limit))
		sb.WriteString(" OFFSET " + arg(f.Offset))
	}
	return sb.String(), args
}
