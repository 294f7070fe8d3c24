package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elias-Manica/My-wallet-back/infra"
	infrarepo "github.com/Elias-Manica/My-wallet-back/infra/repository"
	"github.com/Elias-Manica/My-wallet-back/pkg/config"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	walletsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/wallet"
	"github.com/Elias-Manica/My-wallet-back/webapi"
	"github.com/charmbracelet/log"

	_ "github.com/Elias-Manica/My-wallet-back/cmd/server/docs"
)

// @title My Wallet API
// @version 1.0.0
// @description Personal finance wallet: users, bearer sessions, transactions and a running balance.
// @host localhost:5000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Enter your bearer token in the format: `Bearer {token}`
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = infrarepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	authSvc := authsvc.New(uow, logger)
	walletSvc := walletsvc.New(uow, logger)

	app := webapi.SetupApp(authSvc, walletSvc, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "env", cfg.Env, "address", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		if err = app.Shutdown(); err != nil {
			return err
		}
		return infra.CloseDB(db)
	}
}
