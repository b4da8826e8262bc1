package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/whirl-cli/whirl/internal/config"
	"github.com/whirl-cli/whirl/internal/logger"
	"github.com/whirl-cli/whirl/internal/render"
	"github.com/whirl-cli/whirl/internal/spinner"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [flags] <spinner name>",
		Short: "Animates the named spinner",
		Long:  `whirl preview [--duration=5s] [--watch] dots`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, reg, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			name := args[0]
			duration, _ := cmd.Flags().GetDuration("duration")
			watch, _ := cmd.Flags().GetBool("watch")

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch && cfg.SpinnersFile == "" {
				return fmt.Errorf("--watch requires a spinnersFile in the configuration")
			}

			return preview(ctx, cfg, reg, name, duration, watch)
		},
	}
	cmd.Flags().Duration("duration", 0, "how long to animate (0 runs until interrupted)")
	cmd.Flags().Bool("watch", false, "reload the definitions file on change and restart the animation")
	return cmd
}

// preview animates the named spinner until the duration elapses or the
// context is canceled. With watch enabled, a change to the definitions
// file reloads the registry and restarts the animation with the new
// frames.
func preview(ctx context.Context, cfg *config.Config, reg *spinner.Registry, name string, duration time.Duration, watch bool) error {
	reload := make(chan struct{}, 1)
	if watch {
		go func() {
			err := spinner.Watch(ctx, cfg.SpinnersFile, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
			if err != nil && ctx.Err() == nil {
				logger.Error(ctx, "Watch failed", "err", err)
			}
		}()
	}

	var deadline <-chan time.Time
	if duration > 0 {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		sp, err := lookupSpinner(cfg, reg, name)
		if err != nil {
			return err
		}

		renderer := render.New(sp, sp.Name, render.Options{
			Fancy:   cfg.UI == config.UIFancy,
			NoColor: cfg.NoColor,
		})
		renderer.Start()

		select {
		case <-ctx.Done():
			renderer.Stop(true)
			return nil

		case <-deadline:
			renderer.Stop(true)
			return nil

		case <-reload:
			renderer.Stop(true)
			next, err := buildRegistry(ctx, cfg)
			if err != nil {
				logger.Error(ctx, "Reload failed", "err", err)
				continue
			}
			reg = next
			logger.Info(ctx, "Spinner definitions reloaded", "file", cfg.SpinnersFile)
		}
	}
}
