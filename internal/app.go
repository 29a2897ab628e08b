package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "listings-service/internal/adapters/logger"
	"listings-service/internal/adapters/rest"
	sqlite_adapter "listings-service/internal/adapters/sqlite"
	"listings-service/internal/configs"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/usecase"
	"listings-service/pkg/fluentlogger"
)

// App – estructura de la aplicación.
type App struct {
	config       *configs.AppConfig
	store        *sqlite_adapter.Store
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp crea la aplicación. Es el "Composition Root": acá se crean y
// se conectan todas las dependencias.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. INICIALIZACIÓN DE LOGGERS ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Agregamos el logger de Fluent Bit si está habilitado.
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. BASE DE DATOS EMBEBIDA ---
	store, err := sqlite_adapter.OpenStore(appConfig.Database.File)
	if err != nil {
		appLogger.Error("Failed to open SQLite store", err, nil)
		return nil, fmt.Errorf("failed to open SQLite store: %w", err)
	}
	appLogger.Info("SQLite store opened", port.Fields{"db_file": appConfig.Database.File})

	startupCtx := contextkeys.ContextWithLogger(context.Background(), baseLogger)

	if err := store.EnsureSchema(startupCtx); err != nil {
		appLogger.Error("Failed to ensure schema", err, nil)
		store.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// --- 3. CARGA INICIAL (solo si la tabla está vacía) ---
	importUseCase := usecase.NewImportListingsUseCase(store)

	seed, err := loadSeedListings(appConfig.Database.SeedFile, appLogger)
	if err != nil {
		store.Close()
		return nil, err
	}
	if _, err := importUseCase.Execute(startupCtx, seed); err != nil {
		appLogger.Error("Initial import failed", err, nil)
		store.Close()
		return nil, fmt.Errorf("initial import failed: %w", err)
	}

	// --- 4. REPOSITORIO Y USE CASES ---
	listingRepository, err := sqlite_adapter.NewListingRepository(store)
	if err != nil {
		appLogger.Error("Failed to create listing repository", err, nil)
		store.Close()
		return nil, fmt.Errorf("failed to create listing repository: %w", err)
	}

	searchUseCase := usecase.NewSearchListingsUseCase(listingRepository)
	getByIDUseCase := usecase.NewGetListingByIDUseCase(listingRepository)
	findSimilarUseCase := usecase.NewFindSimilarListingsUseCase(listingRepository)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. SERVIDOR REST ---
	listingHandler := rest.NewListingHandler(searchUseCase, getByIDUseCase, findSimilarUseCase)
	apiServer := rest.NewServer(appConfig.Rest.Port, appConfig.Rest.WebDir, listingHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		store:        store,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// loadSeedListings decide de dónde sale el dataset inicial: de un
// archivo validado por esquema si SEED_FILE está configurado, o del
// dataset de ejemplo incluido en el binario.
func loadSeedListings(seedFile string, logger port.LoggerPort) ([]domain.Listing, error) {
	if seedFile == "" {
		return sqlite_adapter.SampleListings(), nil
	}

	listings, err := sqlite_adapter.LoadSeedFile(seedFile)
	if err != nil {
		logger.Error("Failed to load seed file", err, port.Fields{"seed_file": seedFile})
		return nil, fmt.Errorf("failed to load seed file %s: %w", seedFile, err)
	}
	logger.Info("Seed file loaded", port.Fields{"seed_file": seedFile, "rows": len(listings)})
	return listings, nil
}

// Run arranca los componentes y maneja su ciclo de vida.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.store != nil {
			if err := a.store.Close(); err != nil {
				a.logger.Error("Error closing SQLite store", err, nil)
			} else {
				a.logger.Info("SQLite store closed.", nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// A stdout, porque fluent puede estar ya caído.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Esperamos una señal del sistema o un error de algún componente.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
