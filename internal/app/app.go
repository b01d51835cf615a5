package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/service"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/store/mysql"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *slog.Logger
	Config  *config.Config
	// DataSource describes where the ledger lives, for display.
	DataSource string
	// DBPath is the SQLite file, empty for other drivers.
	DBPath string
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger := NewLogger(cfg.Log.Level)

	var (
		repo   store.Repository
		source string
		dbFile string
	)
	switch strings.ToLower(cfg.Database.Driver) {
	case "", config.DriverSQLite:
		dbPath := cfg.Database.Path
		if dbPath == "" {
			appDir, _ := GetAppDataDir()
			dbPath = filepath.Join(appDir, constants.SQLiteFileName)
		}

		sqliteStore, err := store.NewStore(dbPath, migrationFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo, source, dbFile = sqliteStore, "sqlite://"+dbPath, dbPath

	case config.DriverMySQL:
		mysqlCfg := cfg.Database.MySQL
		db, err := mysql.Open(mysqlCfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		mysqlStore, err := mysql.NewStore(db)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = mysqlStore
		source = fmt.Sprintf("mysql://%s@%s:%d/%s", mysqlCfg.User, mysqlCfg.Host, mysqlCfg.Port, mysqlCfg.DBName)

	default:
		return nil, nil, fmt.Errorf("unknown database driver '%s' (must be %s or %s)",
			cfg.Database.Driver, config.DriverSQLite, config.DriverMySQL)
	}

	svc := service.NewService(repo, cfg, logger)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			pterm.Error.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service:    svc,
		Store:      repo,
		Logger:     logger,
		Config:     cfg,
		DataSource: source,
		DBPath:     dbFile,
	}, cleanup, nil
}

// NewLogger renders slog records with pterm's logger so they match the rest of the output.
func NewLogger(level string) *slog.Logger {
	ptermLogger := pterm.DefaultLogger.WithWriter(os.Stderr)

	switch strings.ToLower(level) {
	case "debug":
		ptermLogger = ptermLogger.WithLevel(pterm.LogLevelDebug)
	case "info":
		ptermLogger = ptermLogger.WithLevel(pterm.LogLevelInfo)
	case "error":
		ptermLogger = ptermLogger.WithLevel(pterm.LogLevelError)
	default:
		ptermLogger = ptermLogger.WithLevel(pterm.LogLevelWarn)
	}

	return slog.New(pterm.NewSlogHandler(ptermLogger))
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
