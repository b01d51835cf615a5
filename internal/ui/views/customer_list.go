package views

import (
	"fmt"

	"github.com/hance08/bankcore/internal/model"
	"github.com/pterm/pterm"
)

func RenderCustomerList(customers []*model.Customer) error {
	if len(customers) == 0 {
		pterm.Warning.Println("No customers found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Email", "Phone", "Status", "Registered"}}
	for _, c := range customers {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", c.ID),
			c.FullName(),
			c.Email,
			orDash(c.Phone),
			customerStatusLabel(c.Status),
			c.DateRegistered.Local().Format("2006-01-02"),
		})
	}

	pterm.DefaultSection.Println("Customers")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d customers\n", len(customers))
	return nil
}

// RenderCustomerDetail prints the customer card. A nil accounts slice skips the account table.
func RenderCustomerDetail(c *model.Customer, accounts []*model.Account, currency string) error {
	pterm.DefaultSection.Printf("Customer #%d", c.ID)

	tableData := pterm.TableData{
		{pterm.Blue("Name"), c.FullName()},
		{pterm.Blue("Email"), c.Email},
		{pterm.Blue("Phone"), orDash(c.Phone)},
		{pterm.Blue("Address"), orDash(c.Address)},
		{pterm.Blue("Status"), customerStatusLabel(c.Status)},
		{pterm.Blue("Registered"), c.DateRegistered.Local().Format("2006-01-02 15:04")},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if accounts == nil {
		return nil
	}
	return NewAccountListView(currency).Render("Accounts", accounts)
}

func customerStatusLabel(s model.CustomerStatus) string {
	switch s {
	case model.CustomerActive:
		return pterm.Green(string(s))
	case model.CustomerBlocked:
		return pterm.Red(string(s))
	default:
		return pterm.Yellow(string(s))
	}
}
