package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/navguard/config"
	"github.com/dev-mohitbeniwal/navguard/controller"
	logger "github.com/dev-mohitbeniwal/navguard/logging"
	"github.com/dev-mohitbeniwal/navguard/router"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "navguard",
		Short:        "Role and menu permission service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize configuration
			if err := config.InitConfig(); err != nil {
				log.Printf("Failed to initialize config: %v", err)
				return err
			}
			// Initialize logger
			logger.InitLogger(config.GetString("log.dir"))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.AddCommand(newServeCommand(), newSyncMenusCommand(), newMigrateCommand(), newGrantRoleCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			a, err := newApp()
			if err != nil {
				logger.Error("Failed to initialize application", zap.Error(err))
				return err
			}
			defer a.Close()

			if err := a.migrate(); err != nil {
				return err
			}
			if err := a.ensureBypassRoles(ctx); err != nil {
				return err
			}
			if config.GetBool("seed.syncOnStart") {
				outcome, err := a.syncMenus(ctx, config.GetString("seed.file"), config.GetBool("seed.removeOrphans"))
				if err != nil {
					logger.Error("Menu sync on start failed", zap.Error(err))
					return err
				}
				if !outcome.Skipped {
					logger.Info("Menus synchronized on start", zap.Int("synced", outcome.Result.SyncedCount))
				}
			}

			controllers := controller.InitializeControllers(a.services, a.auditService)

			// Set up Gin
			gin.SetMode(gin.ReleaseMode)
			engine := router.SetupRouter(controllers, a.services.Permission, router.Options{
				JWTSecret:         config.GetString("auth.jwtSecret"),
				RateLimitRequests: rateLimit(a),
				RateLimitWindow:   config.GetDuration("rateLimit.window"),
			})

			server := &http.Server{
				Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
				Handler: engine,
			}

			go func() {
				logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()

			// Wait for interrupt signal to gracefully shut down the server
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logger.Info("Shutting down server...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", zap.Error(err))
				return err
			}

			logger.Info("Server exiting")
			return nil
		},
	}
}

// rateLimit returns the configured request budget, or zero when Redis is unavailable.
func rateLimit(a *app) int {
	if !a.redisEnabled {
		return 0
	}
	return config.GetInt("rateLimit.requests")
}

func newSyncMenusCommand() *cobra.Command {
	var file string
	var removeOrphans bool

	cmd := &cobra.Command{
		Use:   "sync-menus",
		Short: "Reconcile stored menus with the menu seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if file == "" {
				file = config.GetString("seed.file")
			}
			outcome, err := a.syncMenus(ctx, file, removeOrphans)
			if err != nil {
				logger.Error("Menu sync failed", zap.Error(err))
				return err
			}
			if outcome.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "menu sync is already running elsewhere")
				return nil
			}
			r := outcome.Result
			fmt.Fprintf(cmd.OutOrStdout(), "synced %d menus: %d created, %d updated, %d removed\n",
				r.SyncedCount, r.Created, r.Updated, r.Removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML menu seed (defaults to seed.file, then the built-in seed)")
	cmd.Flags().BoolVar(&removeOrphans, "remove-orphans", false, "delete stored menus the seed no longer declares")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if a.gormStore == nil {
				return errors.New("migrate needs database.enabled")
			}
			return a.migrate()
		},
	}
}

func newGrantRoleCommand() *cobra.Command {
	var userID, orgID int64
	var code string

	cmd := &cobra.Command{
		Use:   "grant-role",
		Short: "Give a user a role, globally or inside one organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.ensureBypassRoles(ctx); err != nil {
				return err
			}
			var org *int64
			if orgID > 0 {
				org = &orgID
			}
			if err := a.grantRole(ctx, userID, code, org); err != nil {
				logger.Error("Failed to grant role", zap.Error(err), zap.Int64("userID", userID), zap.String("role", code))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "granted %s to user %d\n", code, userID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	cmd.Flags().StringVar(&code, "role", "super_admin", "role code")
	cmd.Flags().Int64Var(&orgID, "org", 0, "organization id (global when omitted)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
