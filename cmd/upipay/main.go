package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chris/upi-expense-tracker/pkg/client"
	"github.com/chris/upi-expense-tracker/pkg/config"
	"github.com/chris/upi-expense-tracker/pkg/session"
	"github.com/chris/upi-expense-tracker/pkg/upi"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var Version = "dev"

func main() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for payment details the user has to correct and 1 otherwise.
func exitCode(err error) int {
	if upi.IsValidationError(err) {
		return 2
	}
	return 1
}

// app holds what the subcommands share. It is filled in before any of them runs.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	apiURL    string
	token     string
	sessionDB string

	cfg    *config.Client
	client *client.Client
	logger *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "upipay",
		Short:         "Pay with a UPI app and log the expense once you confirm it went through",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Expense API base URL (default $UPIPAY_API_URL)")
	root.PersistentFlags().StringVar(&a.token, "token", "", "Bearer token (default $UPIPAY_TOKEN)")
	root.PersistentFlags().StringVar(&a.sessionDB, "session-db", "", "Session file (default $UPIPAY_SESSION_DB)")

	root.AddCommand(a.payCmd())
	root.AddCommand(a.resumeCmd())
	root.AddCommand(a.resolveCmd("confirm", "Record the open payment as paid", true))
	root.AddCommand(a.resolveCmd("cancel", "Record that the open payment did not go through", false))
	root.AddCommand(a.dismissCmd())
	root.AddCommand(a.ledgerCmd())

	return root
}

func (a *app) configure() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	if a.token != "" {
		cfg.Token = a.token
	}
	if a.sessionDB != "" {
		cfg.SessionDB = a.sessionDB
	}
	if cfg.Token == "" {
		return fmt.Errorf("no API token: set UPIPAY_TOKEN or pass --token")
	}

	c, err := client.New(cfg.APIURL, cfg.Token, nil)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	a.client = c
	return nil
}

// openController restores any payment left open by an earlier run.
func (a *app) openController(ctx context.Context) (*session.Controller, func(), error) {
	store, err := session.OpenSQLite(a.cfg.SessionDB)
	if err != nil {
		return nil, nil, err
	}
	c := session.NewController(a.client, session.WithPersister(store), session.WithLogger(a.logger))
	if _, err := c.Resume(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	return c, func() { store.Close() }, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
