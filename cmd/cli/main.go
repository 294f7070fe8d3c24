// Command cli is an operator tool for the wallet database. Its only
// subcommand today creates a user without going through the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Elias-Manica/My-wallet-back/infra"
	infrarepo "github.com/Elias-Manica/My-wallet-back/infra/repository"
	"github.com/Elias-Manica/My-wallet-back/pkg/config"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address")
	passwordFlag := fs.String("password", "", "Password (prompted when omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: cli -name <name> -email <email> [-password <password>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: name, email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(stdout)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer infra.CloseDB(db) //nolint:errcheck
	if err = infrarepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	svc := authsvc.New(infrarepo.NewUoW(db), logger)
	u, err := svc.SignUp(context.Background(), *name, *email, password)
	if err != nil {
		return err
	}

	color.Green("User created")
	fmt.Fprintf(stdout, "  id:    %s\n", u.ID)
	fmt.Fprintf(stdout, "  name:  %s\n", u.Name)
	fmt.Fprintf(stdout, "  email: %s\n", u.Email)
	return nil
}
