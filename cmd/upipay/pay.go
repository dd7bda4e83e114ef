package main

import (
	"fmt"

	"github.com/chris/upi-expense-tracker/pkg/session"
	"github.com/chris/upi-expense-tracker/pkg/upi"
	"github.com/spf13/cobra"
)

func (a *app) payCmd() *cobra.Command {
	var (
		to, name, amount, qr  string
		category, description string
		noOpen, interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record a pending expense and open a UPI app to pay it",
		Long: `Record a pending expense and open a UPI app to pay it.

The expense is only logged once you confirm the payment went through.
Use --qr with the text of a scanned UPI QR code to fill in the payee.`,
		Example: `  upipay pay --to shop.owner@okaxis --amount 250.50 --category Food
  upipay pay --qr "upi://pay?pa=shop.owner@okaxis&pn=Ravi" --amount 80 --category Tea`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if qr != "" {
				payee, err := upi.ParseScannedPayload(qr)
				if err != nil {
					return err
				}
				if to == "" {
					to = payee.VPA
				}
				if name == "" {
					name = payee.Name
				}
			}

			c, closeSession, err := a.openController(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			if snap := c.Snapshot(); snap.State != session.Idle {
				return fmt.Errorf("payment %s is still open; run `upipay resume` to finish it", snap.PendingExpenseID)
			}

			req := upi.PaymentRequest{PayeeVPA: to, PayeeName: name, Amount: amount}
			id, err := c.Pay(ctx, req, category, description, &linkRedirector{out: a.out, open: !noOpen})
			if err != nil {
				if id == "" {
					return err
				}
				// the expense is recorded; the link was printed and can be opened by hand
				fmt.Fprintln(a.errOut, err)
			}

			if !interactive {
				fmt.Fprintf(a.out, "Pending expense %s saved. Run `upipay confirm` or `upipay cancel` once you have paid.\n", id)
				return nil
			}
			return a.awaitOutcome(ctx, c, false)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Payee UPI ID, e.g. name@bank")
	cmd.Flags().StringVar(&name, "name", "", "Payee name shown in the UPI app")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in INR")
	cmd.Flags().StringVar(&qr, "qr", "", "Text of a scanned UPI QR code")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Expense category")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description (default \"UPI to <payee>\")")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Print the payment link without opening it")
	cmd.Flags().BoolVar(&interactive, "interactive", isTerminal(a.in), "Wait for the payment and ask how it went")

	return cmd
}
