package views

import (
	"fmt"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	Currency string
}

func NewAccountListView(currency string) *AccountListView {
	return &AccountListView{Currency: currency}
}

func (v *AccountListView) Render(title string, accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"No.", "Customer", "Type", "Status", "Balance", "Rate / Overdraft", "Opened"}}

	for _, acc := range accounts {
		balance := utils.FormatMoneyWithCurrency(acc.Balance, v.Currency)
		if acc.IsOverdrawn() {
			balance = pterm.Red(balance)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("#%d", acc.ID),
			fmt.Sprintf("#%d", acc.CustomerID),
			typeLabel(acc.Type),
			statusLabel(acc.Status),
			balance,
			termsLabel(acc),
			acc.DateOpened.Local().Format("2006-01-02"),
		})
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}

// RenderAccountDetail prints one account with its policy figures.
func RenderAccountDetail(acc *model.Account, currency string) error {
	pterm.Println()
	PrintAccountTitle(acc)

	tableData := pterm.TableData{
		{pterm.Blue("Customer"), fmt.Sprintf("#%d", acc.CustomerID)},
		{pterm.Blue("Type"), typeLabel(acc.Type)},
		{pterm.Blue("Status"), statusLabel(acc.Status)},
		{pterm.Blue("Balance"), utils.FormatMoneyWithCurrency(acc.Balance, currency)},
		{pterm.Blue("Available"), utils.FormatMoneyWithCurrency(acc.WithdrawalCeiling(), currency)},
		{pterm.Blue(termsName(acc.Type)), termsLabel(acc)},
		{pterm.Blue("Opened"), acc.DateOpened.Local().Format("2006-01-02 15:04")},
	}
	if acc.Type == model.AccountTypeSavings {
		tableData = append(tableData, []string{pterm.Blue("Next interest"), utils.FormatMoneyWithCurrency(acc.Interest(), currency)})
	}
	if acc.IsOverdrawn() {
		tableData = append(tableData, []string{pterm.Blue("Overdrawn"), pterm.Red("yes")})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountOpened(acc *model.Account, currency string) error {
	if err := RenderAccountDetail(acc, currency); err != nil {
		return err
	}
	pterm.Success.Printf("Account #%d opened successfully!\n", acc.ID)
	return nil
}

// RenderAccountDeletePreview warns about what an administrative delete removes.
func RenderAccountDeletePreview(acc *model.Account, records int, currency string) {
	pterm.Warning.Printf("About to delete account #%d:\n", acc.ID)

	info := pterm.TableData{
		{"Type", typeLabel(acc.Type)},
		{"Status", statusLabel(acc.Status)},
		{"Balance", utils.FormatMoneyWithCurrency(acc.Balance, currency)},
		{"Transactions", fmt.Sprint(records)},
	}
	_ = pterm.DefaultTable.WithData(info).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func PrintAccountTitle(acc *model.Account) {
	pterm.DefaultSection.Printf("Account #%d", acc.ID)
}

func typeLabel(t model.AccountType) string {
	switch t {
	case model.AccountTypeSavings:
		return pterm.Cyan("Savings")
	case model.AccountTypeCurrent:
		return pterm.Magenta("Current")
	default:
		return string(t)
	}
}

func statusLabel(s model.AccountStatus) string {
	switch s {
	case model.AccountActive:
		return pterm.Green(string(s))
	case model.AccountFrozen:
		return pterm.LightBlue(string(s))
	case model.AccountClosed:
		return pterm.Gray(string(s))
	default:
		return pterm.Yellow(string(s))
	}
}

func termsName(t model.AccountType) string {
	if t == model.AccountTypeSavings {
		return "Interest rate"
	}
	return "Overdraft limit"
}

func termsLabel(acc *model.Account) string {
	if acc.Type == model.AccountTypeSavings {
		return acc.InterestRate.Mul(decimalHundred).String() + "%"
	}
	return utils.FormatMoney(acc.OverdraftLimit)
}
