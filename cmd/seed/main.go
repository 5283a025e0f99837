// Command seed は最初の Super Admin アカウントを投入します。
// DirectoryService の作成規則では Super Admin は Super Admin しか作れないため、
// 初回のブートストラップはこのコマンドで行います。
package main

import (
	"context"
	"flag"
	"log"
	"os"

	identitypg "github.com/ogurasousui/irs-timesheet/internal/adapters/identity/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/adapters/repository/postgres"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/platform/config"
	pg "github.com/ogurasousui/irs-timesheet/internal/platform/db/postgres"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		name       = flag.String("name", "Super Admin", "display name for the seeded account")
		email      = flag.String("email", "", "email address for the seeded account (required)")
		secret     = flag.String("secret", "", "initial password for the seeded account (required, min 6 chars)")
	)
	flag.Parse()

	if *email == "" || *secret == "" {
		flag.Usage()
		log.Fatal("both -email and -secret are required")
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	accountRepo := postgres.NewAccountRepository(dbPool)
	identityProvider := identitypg.NewProvider(dbPool, cfg.Auth.BcryptCost)

	// 通知なし。シード操作者はパスワードを自分で指定しています。
	svc := account.NewService(accountRepo, identityProvider, nil, nil, pg.NewTransactionManager(dbPool))

	// 作成規則をくぐるため、シードの actor は仮想の Super Admin です。
	result, err := svc.CreateAccount(ctx, account.CreateAccountInput{
		Actor:  account.Actor{ID: "seed", Role: account.RoleSuperAdmin},
		Name:   *name,
		Email:  *email,
		Secret: *secret,
		Role:   account.RoleSuperAdmin,
	})
	if err != nil {
		log.Fatalf("failed to seed super admin: %v", err)
	}

	log.Printf("seeded super admin id=%s email=%s", result.Account.ID, result.Account.Email)
}
