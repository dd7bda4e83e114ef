package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chris/upi-expense-tracker/pkg/mapping"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/session"
	"github.com/spf13/cobra"
)

var errNoOpenPayment = errors.New("there is no open payment")

func (a *app) resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Finish a payment left open by an earlier run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeSession, err := a.openController(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			if c.Snapshot().State == session.Idle {
				return errNoOpenPayment
			}
			if !a.describeOpenPayment(cmd.Context(), c) {
				return nil
			}
			// running the command is the user coming back
			return a.awaitOutcome(cmd.Context(), c, true)
		},
	}
}

// describeOpenPayment prints what the open payment was for. When the server
// no longer holds it as pending, for instance because it expired, the payment
// is forgotten locally and false is returned. Lookup failures are only logged:
// the prompt still works without the details.
func (a *app) describeOpenPayment(ctx context.Context, c *session.Controller) bool {
	id := c.Snapshot().PendingExpenseID

	remote, err := a.client.GetExpense(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		fmt.Fprintf(a.out, "Payment %s is no longer on the server. Nothing to confirm.\n", id)
		forget(c)
		return false
	}
	if err != nil {
		a.logger.Warn("failed to look up open payment", "pendingExpenseId", id, "error", err)
		return true
	}
	expense, err := mapping.ToDomainExpense(remote)
	if err != nil {
		a.logger.Warn("failed to read open payment", "pendingExpenseId", id, "error", err)
		return true
	}

	if expense.Status != models.PENDING {
		fmt.Fprintf(a.out, "Payment %s is already %s. Nothing to confirm.\n", id, strings.ToLower(string(expense.Status)))
		forget(c)
		return false
	}
	fmt.Fprintf(a.out, "Open payment: %s INR for %s (%s)\n", expense.Amount, expense.Category, expense.Description)
	return true
}

func forget(c *session.Controller) {
	c.OnPossibleReturn()
	c.Dismiss()
}

func (a *app) resolveCmd(use, short string, paid bool) *cobra.Command {
	outcome := models.CANCELLED
	if paid {
		outcome = models.CONFIRMED
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeSession, err := a.openController(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			if !c.OnPossibleReturn() {
				return errNoOpenPayment
			}
			if _, err := c.Confirm(cmd.Context(), outcome); err != nil {
				return err
			}
			fmt.Fprintln(a.out, resolvedMessage(outcome))
			return nil
		},
	}
}

func (a *app) dismissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss",
		Short: "Forget the open payment without logging it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeSession, err := a.openController(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			if !c.OnPossibleReturn() || !c.Dismiss() {
				return errNoOpenPayment
			}
			fmt.Fprintln(a.out, "Dismissed. The expense was not logged.")
			return nil
		},
	}
}

func (a *app) ledgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "List logged expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.client.ListExpenses(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, e := range ledger.Data.Expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Category, e.Amount, e.Description)
			}
			fmt.Fprintf(w, "\tTOTAL\t%s\t\n", ledger.Data.Total)
			return w.Flush()
		},
	}
}

func resolvedMessage(outcome models.ExpenseStatus) string {
	if outcome == models.CONFIRMED {
		return "Expense logged."
	}
	return "Payment marked as not completed. Nothing was logged."
}
