package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/shopspring/decimal"
)

// parseListProductsQuery lee filtros, orden y paginación del query string.
// Valores con formato inválido se acumulan en un único *dto.ValidationError.
func parseListProductsQuery(c *fiber.Ctx) (dto.ListProductsQuery, error) {
	q := dto.ListProductsQuery{
		Name:         c.Query("name"),
		CategoryName: c.Query("categoryName"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
	}
	fields := map[string]string{}
	var err error

	if q.CategoryID, err = queryInt64(c, "categoryId"); err != nil {
		fields["categoryId"] = "int"
	}
	if q.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		fields["minPrice"] = "number"
	}
	if q.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		fields["maxPrice"] = "number"
	}
	if q.InStock, err = queryBool(c, "inStock"); err != nil {
		fields["inStock"] = "boolean"
	}
	if q.Page, err = queryInt(c, "page", dto.DefaultPage); err != nil {
		fields["page"] = "int"
	}
	if q.PageSize, err = queryInt(c, "pageSize", dto.DefaultPageSize); err != nil {
		fields["pageSize"] = "int"
	}

	if len(fields) > 0 {
		return q, &dto.ValidationError{Fields: fields}
	}
	return q, nil
}

func queryInt64(c *fiber.Ctx, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// productIDParam lee :id. La ruta ya restringe a enteros; un valor fuera de rango es un 404.
func productIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", domain.ErrProductNotFound, c.Params("id"))
	}
	return id, nil
}
