package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	// LoginRateLimit intentos de login por minuto e IP; 0 desactiva el límite.
	LoginRateLimit int
}

// AppConfig opciones de la aplicación fiber.
type AppConfig struct {
	Name         string
	AllowOrigins string
	// SwaggerFile ruta al documento OpenAPI; vacío = sin /docs.
	SwaggerFile string
}

// NewApp construye la aplicación con la cadena de middlewares y las rutas registradas.
// Orden: NotFoundPayload -> ErrorMapping -> recover -> requestid -> log -> rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: FallbackErrorHandler,
	})

	app.Use(NotFoundPayload())
	app.Use(ErrorMapping())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger())
	if cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    cfg.Name,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con límite de intentos)
	authHandler := NewAuthHandler(deps.AuthUC)
	loginHandlers := []fiber.Handler{}
	if deps.LoginRateLimit > 0 {
		loginHandlers = append(loginHandlers, limiter.New(limiter.Config{
			Max:        deps.LoginRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.ErrTooManyRequests
			},
		}))
	}
	loginHandlers = append(loginHandlers, authHandler.Login)
	api.Post("/auth/login", loginHandlers...)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret)

	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/export/pdf", productHandler.ExportPDF)
	products.Get("/:id<int>", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id<int>", productHandler.Update)
	products.Delete("/:id<int>", productHandler.Delete)

	categories := api.Group("/categories", requireAuth)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
}
