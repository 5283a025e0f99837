package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	identitypg "github.com/ogurasousui/irs-timesheet/internal/adapters/identity/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/repository/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
	"github.com/ogurasousui/irs-timesheet/internal/core/notifier"
	"github.com/ogurasousui/irs-timesheet/internal/core/report"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
	"github.com/ogurasousui/irs-timesheet/internal/platform/config"
	pg "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/platform/server"
)

// accountNameResolver は週の表示名解決のために台帳を参照します。
type accountNameResolver struct {
	repo account.Repository
}

func (r accountNameResolver) AccountName(ctx context.Context, id string) (string, error) {
	acc, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return acc.Name, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	accountRepo := postgres.NewAccountRepository(dbPool)
	timesheetRepo := postgres.NewTimesheetRepository(dbPool)
	mailQueue := postgres.NewMailRepository(dbPool)
	identityProvider := identitypg.NewProvider(dbPool, cfg.Auth.BcryptCost)

	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	credentialNotifier := notifier.NewService(mailQueue)

	accountSvc := account.NewService(accountRepo, identityProvider, credentialNotifier, nil, txManager)
	authSvc := auth.NewService(identityProvider, accountRepo, tokenIssuer, nil)
	timesheetSvc := timesheet.NewService(timesheetRepo, accountNameResolver{repo: accountRepo}, nil, txManager)
	reportSvc := report.NewService(timesheetSvc)

	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Auth:      authSvc,
		Accounts:  accountSvc,
		Weeks:     timesheetSvc,
		Reports:   reportSvc,
		TokenAuth: tokenIssuer,
	})

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
