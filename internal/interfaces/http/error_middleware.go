package http

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	notFoundError   = "Resource not found"
	notFoundDetails = "The requested resource does not exist on the server."
	internalDetail  = "An unexpected error occurred."

	// ContentTypeProblemJSON tipo de contenido de las respuestas 404 sin cuerpo.
	ContentTypeProblemJSON = "application/problem+json"
)

// ErrorMapping convierte el error devuelto por la cadena en una respuesta ProblemDetails.
// Los "no encontrado" quedan como 404 sin cuerpo para que NotFoundPayload escriba el cuerpo.
// Debe registrarse antes de recover para que los panics lleguen aquí como errores.
func ErrorMapping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		return writeProblem(c, err)
	}
}

// NotFoundPayload completa las respuestas 404 que terminan sin error y sin cuerpo.
// No interviene si la cadena interna devolvió un error.
func NotFoundPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() != fiber.StatusNotFound || len(c.Response().Body()) != 0 {
			return nil
		}

		var query *string
		if raw := string(c.Request().URI().QueryString()); raw != "" {
			q := "?" + raw
			query = &q
		}
		body, err := json.MarshalIndent(dto.NotFoundDetails{
			Error:       notFoundError,
			Status:      fiber.StatusNotFound,
			Method:      c.Method(),
			Path:        c.Path(),
			QueryString: query,
			Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
			Details:     notFoundDetails,
		}, "", "  ")
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, ContentTypeProblemJSON)
		return c.Send(body)
	}
}

// FallbackErrorHandler último recurso para errores que escapan de ambos middlewares.
func FallbackErrorHandler(c *fiber.Ctx, err error) error {
	if werr := writeProblem(c, err); werr != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if c.Response().StatusCode() == fiber.StatusNotFound && len(c.Response().Body()) == 0 {
		return c.SendString(notFoundError)
	}
	return nil
}

func writeProblem(c *fiber.Ctx, err error) error {
	status, kind, detail := classifyError(err)
	c.Response().ResetBody()

	if status == fiber.StatusNotFound {
		c.Status(fiber.StatusNotFound)
		return nil
	}

	traceID := uuid.NewString()
	if status >= fiber.StatusInternalServerError {
		log.Error().
			Str("trace_id", traceID).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Err(err).
			Msg("unhandled error")
	}

	return c.Status(status).JSON(dto.ProblemDetails{
		Title:     utils.StatusMessage(status),
		Type:      kind,
		Detail:    detail,
		Status:    status,
		TraceID:   traceID,
		Method:    c.Method(),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Path:      c.Path(),
		RequestID: requestID(c),
	})
}

// classifyError devuelve status HTTP, nombre del tipo de error y detalle seguro para el cliente.
func classifyError(err error) (int, string, string) {
	var validationErr *dto.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NotFoundError", err.Error()
	case errors.As(err, &validationErr), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "ValidationError", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UnauthorizedError", err.Error()
	case errors.As(err, &fiberErr):
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, kindForStatus(fiberErr.Code), internalDetail
		}
		return fiberErr.Code, kindForStatus(fiberErr.Code), fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "InternalError", internalDetail
	}
}

// kindForStatus: "Method Not Allowed" -> "MethodNotAllowedError".
func kindForStatus(status int) string {
	if status == fiber.StatusInternalServerError {
		return "InternalError"
	}
	msg := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, utils.StatusMessage(status))
	if msg == "" {
		return "HTTPError"
	}
	return msg + "Error"
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
