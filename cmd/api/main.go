package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/Catalogo-api/docs"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer store.close()

	seeded, err := usecase.NewCatalogSeeder(store.tx).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos iniciales")
	}
	if seeded {
		log.Info().Msg("catálogo inicial cargado")
	}

	verifier, err := auth.NewStaticCredentialVerifier(cfg.Auth.Username, cfg.Auth.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("verificador de credenciales")
	}
	authUC := auth.NewAuthUseCase(verifier, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
	})
	productUC := usecase.NewProductUseCase(store.products, store.categories, infrapdf.NewPriceListGenerator(cfg.App.Name))
	categoryUC := usecase.NewCategoryUseCase(store.categories)

	// Swagger UI solo en desarrollo: http://localhost:<port>/docs
	docsFile := ""
	if cfg.App.Env == "development" {
		if _, err := os.Stat(swaggerFile); err == nil {
			docsFile = swaggerFile
		} else {
			log.Warn().Str("file", swaggerFile).Msg("documento OpenAPI no encontrado, /docs deshabilitado")
		}
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.HTTP.AllowOrigins,
		SwaggerFile:  docsFile,
	}, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// catalogStore repositorios y transacciones del almacenamiento elegido.
type catalogStore struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	tx         usecase.CatalogTxRunner
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config) (*catalogStore, error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return &catalogStore{
			categories: sqlite.NewCategoryRepository(db),
			products:   sqlite.NewProductRepository(db),
			tx:         sqlite.NewTxRunner(db),
			close:      func() { _ = sqlite.Close(db) },
		}, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &catalogStore{
			categories: postgres.NewCategoryRepository(pool),
			products:   postgres.NewProductRepository(pool),
			tx:         postgres.NewTxRunner(pool),
			close:      pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("store driver desconocido %q", cfg.Store.Driver)
	}
}
