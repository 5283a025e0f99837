//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	identitypg "github.com/ogurasousui/irs-timesheet/internal/adapters/identity/postgres"
	repo "github.com/ogurasousui/irs-timesheet/internal/adapters/repository/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
	"github.com/ogurasousui/irs-timesheet/internal/platform/config"
	pg "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

const migrationsDir = "assets/migrations"

func TestTimesheetLifecycleIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	txManager := pg.NewTransactionManager(pool)
	accountRepo := repo.NewAccountRepository(pool)
	timesheetRepo := repo.NewTimesheetRepository(pool)
	identityProvider := identitypg.NewProvider(pool, cfg.Auth.BcryptCost)

	clock := stubClock{now: time.Now().UTC()}
	accountSvc := account.NewService(accountRepo, identityProvider, nil, clock, txManager)
	authSvc := auth.NewService(identityProvider, accountRepo, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), clock)
	timesheetSvc := timesheet.NewService(timesheetRepo, nil, clock, txManager)

	superAdmin := account.Actor{ID: "seed", Role: account.RoleSuperAdmin}

	// アカウント作成 → ログイン。
	created, err := accountSvc.CreateAccount(ctx, account.CreateAccountInput{
		Actor:  superAdmin,
		Name:   "Integration Worker",
		Email:  "integration.worker@example.com",
		Secret: "secret123",
		Role:   account.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	session, err := authSvc.Login(ctx, "Integration.Worker@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if session.Account.ID != created.Account.ID {
		t.Fatalf("login resolved wrong account: %s", session.Account.ID)
	}

	employee := account.Actor{ID: created.Account.ID, Role: created.Account.Role}
	weekEnd := time.Date(2024, time.March, 24, 0, 0, 0, 0, time.UTC)
	weekID := timesheet.WeekID(employee.ID, weekEnd)

	// ドラフト保存 → 提出 → 差し戻し → 管理者承認。
	_, err = timesheetSvc.SaveDayDraft(ctx, timesheet.SaveDayDraftInput{
		Actor:     employee,
		WeekID:    weekID,
		WeekLabel: "Sunday 24/03/2024",
		WeekStart: "18/03/2024",
		Day:       timesheet.DayEntry{ID: timesheet.SlotMonday, Label: "Monday 18/03/2024", Hours: 7.5},
	})
	if err != nil {
		t.Fatalf("SaveDayDraft error: %v", err)
	}

	submitted, err := timesheetSvc.Submit(ctx, timesheet.SubmitInput{Actor: employee, WeekID: weekID})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if submitted.Status != timesheet.StatusSubmitted || submitted.SubmittedAt == nil {
		t.Fatalf("unexpected submitted week %+v", submitted)
	}

	manager := account.Actor{ID: "mgr-integration", Role: account.RoleManager}
	rejected, err := timesheetSvc.Review(ctx, timesheet.ReviewInput{
		Actor:            manager,
		WeekID:           weekID,
		Decision:         timesheet.StatusRejected,
		RejectionComment: "please add job numbers",
	})
	if err != nil {
		t.Fatalf("Review error: %v", err)
	}
	if rejected.Status != timesheet.StatusRejected || rejected.RejectionComment == "" {
		t.Fatalf("unexpected rejected week %+v", rejected)
	}

	approved, err := timesheetSvc.ForceApprove(ctx, timesheet.ForceApproveInput{Actor: manager, WeekID: weekID})
	if !errors.Is(err, timesheet.ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict approving a rejected week, got %v %v", approved, err)
	}

	weeks, err := timesheetSvc.ListWeeks(ctx, timesheet.ListWeeksInput{Actor: employee})
	if err != nil {
		t.Fatalf("ListWeeks error: %v", err)
	}
	if len(weeks) != 1 || weeks[0].ID != weekID {
		t.Fatalf("unexpected weeks %+v", weeks)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
