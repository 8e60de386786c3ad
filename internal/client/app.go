// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-account-service/internal/adapter"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

type command struct {
	operands []string
	help     string
	run      func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"list":   {help: "list all accounts", run: (*App).list},
	"get":    {operands: []string{"ID"}, help: "show one account", run: (*App).get},
	"create": {help: "create an account from the JSON payload on stdin", run: (*App).create},
	"update": {operands: []string{"ID"}, help: "replace an account from the JSON payload on stdin", run: (*App).update},
	"delete": {operands: []string{"ID"}, help: "delete an account", run: (*App).delete},
	"health": {help: "check service health", run: (*App).health},
}

// createdAccount is printed by the create command.
type createdAccount struct {
	Location string         `json:"location"`
	Account  models.Account `json:"account"`
}

// App runs one client command per Run call.
type App struct {
	accounts adapter.AccountAdapter

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp returns an App reading payloads from in and writing results to out.
func NewApp(accounts adapter.AccountAdapter, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		accounts: accounts,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run executes args[0] with the remaining args as its operands.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(operands) != len(cmd.operands) {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrWrongArgCount, name, len(cmd.operands), len(operands))
	}

	a.logger.Debug().Str("command", name).Strs("operands", operands).Msg("running command")

	return cmd.run(a, ctx, operands)
}

func (a *App) list(ctx context.Context, _ []string) error {
	accounts, err := a.accounts.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return a.print(accounts)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	account, err := a.accounts.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) create(ctx context.Context, _ []string) error {
	payload, err := a.readPayload()
	if err != nil {
		return err
	}

	account, location, err := a.accounts.CreateAccount(ctx, payload)
	if err != nil {
		return err
	}
	return a.print(createdAccount{Location: location, Account: account})
}

func (a *App) update(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	payload, err := a.readPayload()
	if err != nil {
		return err
	}

	account, err := a.accounts.UpdateAccount(ctx, id, payload)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.accounts.DeleteAccount(ctx, id)
}

func (a *App) health(ctx context.Context, _ []string) error {
	status, err := a.accounts.Health(ctx)
	if err != nil {
		return err
	}
	return a.print(status)
}

func (a *App) readPayload() (models.AccountPayload, error) {
	var payload models.AccountPayload
	if err := json.NewDecoder(a.in).Decode(&payload); err != nil {
		return models.AccountPayload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return payload, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// Usage writes the list of commands to w.
func Usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: account-client [-a address] [-timeout duration] [-v] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, name := range names {
		cmd := commands[name]
		synopsis := name
		for _, op := range cmd.operands {
			synopsis += " " + op
		}
		fmt.Fprintf(w, "  %-10s %s\n", synopsis, cmd.help)
	}
}
