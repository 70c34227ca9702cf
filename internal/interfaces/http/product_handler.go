package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Filtros conjuntivos, orden y paginación. Productos sin stock omiten stockQuantity e inStock.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoryId    query  int     false  "ID de categoría"
// @Param        minPrice      query  number  false  "Precio mínimo (inclusivo)"
// @Param        maxPrice      query  number  false  "Precio máximo (inclusivo)"
// @Param        inStock       query  bool    false  "true: stock > 0, false: stock = 0"
// @Param        name          query  string  false  "Subcadena del nombre"
// @Param        categoryName  query  string  false  "Subcadena del nombre de categoría"
// @Param        sortBy        query  string  false  "price | name | category | stock"
// @Param        sortOrder     query  string  false  "asc | desc"
// @Param        page          query  int     false  "Página"            default(1)
// @Param        pageSize      query  int     false  "Tamaño de página"  default(10)
// @Success      200  {array}   dto.FullProduct
// @Failure      400  {object}  dto.ProblemDetails
// @Failure      401  {object}  dto.ProblemDetails
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q, err := parseListProductsQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.FullProduct
// @Failure      401  {object}  dto.ProblemDetails
// @Failure      404  {object}  dto.NotFoundDetails
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.FullProduct
// @Failure      400   {object}  dto.ProblemDetails
// @Failure      401   {object}  dto.ProblemDetails
// @Failure      404   {object}  dto.NotFoundDetails
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	if id, ok := viewID(out); ok {
		c.Location(fmt.Sprintf("/api/products/%d", id))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Actualización parcial: solo se aplican los campos presentes.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      204
// @Failure      400   {object}  dto.ProblemDetails
// @Failure      401   {object}  dto.ProblemDetails
// @Failure      404   {object}  dto.NotFoundDetails
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      401  {object}  dto.ProblemDetails
// @Failure      404  {object}  dto.NotFoundDetails
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Lista de precios en PDF
// @Description  Acepta los mismos filtros y orden que el listado; ignora la paginación.
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        categoryId    query  int     false  "ID de categoría"
// @Param        inStock       query  bool    false  "Solo con stock"
// @Param        sortBy        query  string  false  "price | name | category | stock"
// @Param        sortOrder     query  string  false  "asc | desc"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ProblemDetails
// @Failure      401  {object}  dto.ProblemDetails
// @Router       /api/products/export/pdf [get]
func (h *ProductHandler) ExportPDF(c *fiber.Ctx) error {
	q, err := parseListProductsQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ExportPriceList(c.UserContext(), q)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="price-list.pdf"`)
	return c.Send(out)
}

func viewID(v dto.ProductView) (int64, bool) {
	switch p := v.(type) {
	case dto.FullProduct:
		return p.ID, true
	case dto.ReducedProduct:
		return p.ID, true
	}
	return 0, false
}
