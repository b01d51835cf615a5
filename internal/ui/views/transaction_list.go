package views

import (
	"fmt"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/ui"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

type TransactionListView struct {
	Currency string
}

func NewTransactionListView(currency string) *TransactionListView {
	return &TransactionListView{Currency: currency}
}

func (v *TransactionListView) Render(title string, txs []*model.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"ID", "Date", "Account", "Type", "Description", "Amount", "Balance"},
	}

	for _, tx := range txs {
		amount := ui.ColorAmount(signedMoney(tx), tx.Kind.IsCredit())

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Timestamp.Local().Format(constants.DateTimeFormat),
			fmt.Sprintf("#%d", tx.AccountID),
			kindLabel(tx.Kind),
			orDash(tx.Description),
			amount,
			utils.FormatMoneyWithCurrency(tx.BalanceAfter, v.Currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}

func kindLabel(k model.TransactionKind) string {
	switch k {
	case model.KindDeposit:
		return pterm.Green("Deposit")
	case model.KindWithdrawal:
		return pterm.Red("Withdrawal")
	case model.KindTransferOut:
		return pterm.Blue("Transfer out")
	case model.KindTransferIn:
		return pterm.Blue("Transfer in")
	case model.KindInterest:
		return pterm.Cyan("Interest")
	default:
		return string(k)
	}
}

func signedMoney(tx *model.Transaction) string {
	s := utils.FormatMoney(tx.SignedAmount())
	if tx.Kind.IsCredit() {
		return "+" + s
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
