// Package root holds the boostctl command tree. Every command opens the
// configured backend through the same composition root as the server.
package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"socialboot/internal/app"
	"socialboot/internal/audit"
	"socialboot/internal/bootstrap"
	"socialboot/internal/platform/config"
	"socialboot/internal/platform/logger"
	"socialboot/internal/reward"
	"socialboot/internal/session"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "boostctl",
		Short:         "Inspect and adjust socialboot state",
		Long:          "boostctl operates on the key-value backend configured for the socialboot server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.AddCommand(
		newTasksCmd(),
		newFollowersCmd(),
		newWalletCmd(),
		newNotificationsCmd(),
		newSessionCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, badStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// env is what a command gets from openApp.
type env struct {
	app    *app.App
	tokens *session.TokenIssuer
}

// openApp builds the application against the configured backend. Logs go to
// stderr at warn level so command output stays readable.
func openApp(ctx context.Context) (*env, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewWithWriter(os.Stderr, "warn")

	store, closeKV, err := bootstrap.OpenKV(ctx, cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := closeKV(); err != nil {
			log.Error("failed to close key-value store", "error", err)
		}
	}

	rewards, err := reward.LoadFile(cfg.RewardsCatalogPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	authenticator, tokens := bootstrap.NewAuthenticator(cfg.Auth, store)
	a, err := app.New(ctx, app.Deps{
		KV:            store,
		Logger:        log,
		Authenticator: authenticator,
		Audit:         audit.NewPublisher(audit.NewLogSink(log)),
		Rewards:       rewards,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return &env{app: a, tokens: tokens}, cleanup, nil
}
