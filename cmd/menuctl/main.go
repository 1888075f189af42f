// menuctl 是菜單資料的管理工具：新增、依名稱刪除、執行 migration、產生員工密碼哈希
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"taste-of-aloha/internal/api"
	"taste-of-aloha/internal/cache"
	"taste-of-aloha/internal/config"
	"taste-of-aloha/internal/database"
	"taste-of-aloha/internal/logging"
	"taste-of-aloha/internal/service"
	"taste-of-aloha/internal/store"
	"taste-of-aloha/internal/worker"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const (
	defaultItemName        = "Spam Musubi"
	defaultItemPrice       = "5.99"
	defaultItemDescription = "Sample menu item created via script"
	defaultItemCategory    = "Specials"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	hashPassword    = service.HashPassword
	openMenuStore   = openStore
	exitFunc        = os.Exit
)

// openStore 依設定開啟 store；設定 Redis 時包上快取層，寫入才會使服務端的快取失效
func openStore(ctx context.Context, cfg *config.Config) (store.MenuStore, func(), error) {
	var (
		menus   store.MenuStore
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.StoreDriver == config.DriverPostgres {
		db, err := newPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		closers = append(closers, db.Close)
		menus = store.NewPostgresMenuStore(db)
	} else {
		menus = store.NewMemoryMenuStore()
	}

	if cfg.Redis.Addr != "" {
		cch, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("Redis 連線失敗: %w", err)
		}
		closers = append(closers, func() { _ = cch.Close() })

		logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		logger.SetOutput(os.Stderr)
		menus = store.NewCachedMenuStore(menus, cch, worker.Inline{}, cfg.CacheTTL, logger)
	}
	return menus, closeAll, nil
}

func withService(cmd *cobra.Command, fn func(context.Context, *service.MenuService) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	menus, closeFn, err := openMenuStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, service.NewMenuService(menus, ""))
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [price]",
		Short: "Create a sample menu item",
		Long:  fmt.Sprintf("Create a menu item in category %q. Name defaults to %q and price to %s.", defaultItemCategory, defaultItemName, defaultItemPrice),
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, priceArg := defaultItemName, defaultItemPrice
			if len(args) > 0 && args[0] != "" {
				name = args[0]
			}
			if len(args) > 1 {
				priceArg = args[1]
			}
			price, err := decimal.NewFromString(priceArg)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", priceArg, err)
			}

			return withService(cmd, func(ctx context.Context, svc *service.MenuService) error {
				item, err := svc.Create(ctx, api.CreateMenuItemRequest{
					Name:        name,
					Description: defaultItemDescription,
					Price:       &price,
					Category:    defaultItemCategory,
				})
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(api.NewMenuItemResponse(*item), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Menu item created: %s\n", out)
				return nil
			})
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Short:   "Delete every menu item with exactly this name",
		Example: `  menuctl remove "Garlic Shrimp"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return errors.New("provide a menu item name to delete")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withService(cmd, func(ctx context.Context, svc *service.MenuService) error {
				n, err := svc.DeleteByName(ctx, name)
				if err != nil {
					return fmt.Errorf("failed to remove item: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d item(s) named %q.\n", n, name)
				return nil
			})
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back all schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.StoreDriver != config.DriverPostgres {
				return fmt.Errorf("migrate requires STORE_DRIVER=%s", config.DriverPostgres)
			}

			fn := runMigrationsFn
			if args[0] == "down" {
				fn = rollbackFn
			}
			if err := fn(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", args[0])
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for STAFF_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := hashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Taste of Aloha menu administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAddCmd(), newRemoveCmd(), newMigrateCmd(), newHashPasswordCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitFunc(1)
	}
}
