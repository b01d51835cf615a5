package views

import (
	"fmt"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/ui"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction #%d", tx.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Reference", tx.Reference.String()},
		{"Date", tx.Timestamp.Local().Format(constants.DateTimeFormat)},
		{"Account", fmt.Sprintf("#%d", tx.AccountID)},
		{"Type", kindLabel(tx.Kind)},
		{"Amount", ui.ColorAmount(utils.FormatMoneyWithCurrency(tx.SignedAmount(), currency), tx.Kind.IsCredit())},
		{"Balance after", utils.FormatMoneyWithCurrency(tx.BalanceAfter, currency)},
		{"Description", orDash(tx.Description)},
	}
	if tx.CounterpartyAccountID != nil {
		infoData = append(infoData, []string{"Counterparty", fmt.Sprintf("#%d", *tx.CounterpartyAccountID)})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

// RenderReceipt confirms a posted deposit, withdrawal or interest credit.
func RenderReceipt(tx *model.Transaction, currency string) {
	ui.Separator()
	pterm.Success.Printf("%s of %s posted to account #%d (transaction #%d)\n",
		pterm.RemoveColorFromString(kindLabel(tx.Kind)),
		utils.FormatMoneyWithCurrency(tx.Amount, currency), tx.AccountID, tx.ID)
	pterm.Info.Printf("New balance: %s\n", utils.FormatMoneyWithCurrency(tx.BalanceAfter, currency))
}

// RenderTransferReceipt confirms both legs of a transfer.
func RenderTransferReceipt(out, in *model.Transaction, currency string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{"Leg", "Account", "Transaction", "Amount", "Balance after"},
		{"Out", fmt.Sprintf("#%d", out.AccountID), fmt.Sprintf("%d", out.ID),
			pterm.Red(utils.FormatMoney(out.SignedAmount())), utils.FormatMoneyWithCurrency(out.BalanceAfter, currency)},
		{"In", fmt.Sprintf("#%d", in.AccountID), fmt.Sprintf("%d", in.ID),
			pterm.Green("+" + utils.FormatMoney(in.Amount)), utils.FormatMoneyWithCurrency(in.BalanceAfter, currency)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Transferred %s (ref %s)\n", utils.FormatMoneyWithCurrency(out.Amount, currency), out.Reference)
	return nil
}
