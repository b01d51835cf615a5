package views

import (
	"fmt"

	"github.com/hance08/bankcore/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	Driver          string
	DataSource      string
	DBExists        bool // only meaningful for sqlite
	DefaultCurrency string
	InterestRate    string
	OverdraftLimit  string
	LogLevel        string
	AppDataDir      string
	Customers       int
	Accounts        int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Driver", data.Driver},
		{"Data Source", data.DataSource},
	}
	if data.Driver == "sqlite" {
		tableData = append(tableData, []string{"Database Status", dbStatus})
	}
	tableData = append(tableData,
		[]string{"Default Currency", data.DefaultCurrency},
		[]string{"Default Interest Rate", data.InterestRate},
		[]string{"Default Overdraft Limit", data.OverdraftLimit},
		[]string{"Log Level", data.LogLevel},
		[]string{"AppData Directory", data.AppDataDir},
		[]string{"Customers / Accounts", fmt.Sprintf("%d / %d", data.Customers, data.Accounts)},
	)

	ui.PrintL1Title("bank system info")
	return pterm.DefaultTable.WithData(tableData).Render()
}
