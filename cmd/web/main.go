package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jhalme/ironweek/internal/ai"
	"github.com/jhalme/ironweek/internal/analytics"
	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/envstruct"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/flightrecorder"
	"github.com/jhalme/ironweek/internal/logging"
	"github.com/jhalme/ironweek/internal/program"
	"github.com/jhalme/ironweek/internal/sqlite"
	"github.com/jhalme/ironweek/internal/traininglog"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	db               *sqlite.Database
	catalog          *catalog.Catalog
	programService   *program.Service
	logService       *traininglog.Service
	analyticsService *analytics.Service
	aiClient         *ai.Client
	flightRecorder   *flightrecorder.Service
	exportPath       string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"IRONWEEK_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"IRONWEEK_SQLITE_URL" envDefault:"./ironweek.sqlite3"`
	// OpenAIAPIKey enables AI coaching notes on the analytics summary when set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// ExportPath is the directory where user data exports are written.
	ExportPath string `env:"IRONWEEK_EXPORT_PATH" envDefault:"/tmp"`
	// TracesDir enables flight recorder trace capture for failing requests when set.
	TracesDir string `env:"IRONWEEK_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	cat := catalog.Builtin()
	programService := program.NewService(db, cat, logger)
	logService := traininglog.NewService(db, programService, cat, logger)

	app := application{
		logger:           logger,
		sessionManager:   sessionManager,
		db:               db,
		catalog:          cat,
		programService:   programService,
		logService:       logService,
		analyticsService: analytics.NewService(db, logService, logger),
		aiClient:         ai.NewClient(cfg.OpenAIAPIKey, logger),
		flightRecorder:   recorder,
		exportPath:       cfg.ExportPath,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                           //nolint:mnd // month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
