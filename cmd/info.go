package cmd

import (
	"os"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database location, defaults and record counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	ctx := r.cmd.Context()
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	driver := cfg.Database.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}

	dbExists := false
	if r.app.DBPath != "" {
		if _, err := os.Stat(r.app.DBPath); err == nil {
			dbExists = true
		}
	}

	customers, err := r.app.Service.Customer.List(ctx)
	if err != nil {
		return err
	}
	accounts, err := r.app.Service.Account.List(ctx, store.AccountFilter{})
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		Driver:          driver,
		DataSource:      r.app.DataSource,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		InterestRate:    cfg.Defaults.InterestRate,
		OverdraftLimit:  cfg.Defaults.OverdraftLimit,
		LogLevel:        cfg.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
		Customers:       len(customers),
		Accounts:        len(accounts),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
