package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/bankcore/cmd/account"
	"github.com/hance08/bankcore/cmd/customer"
	"github.com/hance08/bankcore/cmd/transaction"
	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/errhandler"
	"github.com/hance08/bankcore/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE once flags are parsed.
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "bank",
		Short: "bank manages customers, accounts and an atomic money ledger",
		Long: `bank manages customers and their savings and current accounts.

Deposits, withdrawals, transfers and interest credits are posted atomically:
either every balance change and ledger record of an operation is stored, or none is.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			built, closeFn, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = closeFn
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(customer.NewCustomerCmd(application))
	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))

	rootCmd.AddCommand(transaction.NewDepositCmd(application))
	rootCmd.AddCommand(transaction.NewWithdrawCmd(application))
	rootCmd.AddCommand(transaction.NewTransferCmd(application))
	rootCmd.AddCommand(transaction.NewHistoryCmd(application))
	rootCmd.AddCommand(NewInterestCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()

	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	firstRun, err := createDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("BANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if firstRun && isInteractive() {
		if err := initWizard(); err != nil {
			return err
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	path, err := expandPath(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}
	cfg.Database.Path = path
	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func setDefaults() {
	defaults := config.NewDefault()

	viper.SetDefault("database.driver", defaults.Database.Driver)
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("database.mysql.host", defaults.Database.MySQL.Host)
	viper.SetDefault("database.mysql.port", defaults.Database.MySQL.Port)
	viper.SetDefault("database.mysql.user", defaults.Database.MySQL.User)
	viper.SetDefault("database.mysql.password", "")
	viper.SetDefault("database.mysql.dbname", defaults.Database.MySQL.DBName)
	viper.SetDefault("database.mysql.max_open_conns", defaults.Database.MySQL.MaxOpenConns)
	viper.SetDefault("database.mysql.max_idle_conns", defaults.Database.MySQL.MaxIdleConns)
	viper.SetDefault("database.mysql.conn_max_lifetime", defaults.Database.MySQL.ConnMaxLifetime)
	viper.SetDefault("database.mysql.lock_wait_timeout", defaults.Database.MySQL.LockWaitTimeout)
	viper.SetDefault("database.mysql.log_level", defaults.Database.MySQL.LogLevel)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("defaults.interest_rate", defaults.Defaults.InterestRate)
	viper.SetDefault("defaults.overdraft_limit", defaults.Defaults.OverdraftLimit)
	viper.SetDefault("log.level", defaults.Log.Level)
}

func initWizard() error {
	answers, err := prompts.PromptInit(viper.GetString("defaults.currency"), viper.GetString("defaults.interest_rate"))
	if err != nil {
		return err
	}

	viper.Set("defaults.currency", answers.Currency)
	viper.Set("defaults.interest_rate", answers.InterestRate)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", answers.Currency)
	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// createDefaultConfig writes the defaults to the user config dir when no config file
// exists yet, and reports whether it did.
func createDefaultConfig() (bool, error) {
	if cfgFile != "" {
		return false, nil
	}

	appDir, err := app.GetAppDataDir()
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
