package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/whirl-cli/whirl/internal/config"
	"github.com/whirl-cli/whirl/internal/logger"
	"github.com/whirl-cli/whirl/internal/render"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Runs a command with a spinner",
		Long:  `whirl run [--spinner=dots] [--message="working"] -- sleep 5`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, reg, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			spinnerName, _ := cmd.Flags().GetString("spinner")
			sp, err := lookupSpinner(cfg, reg, spinnerName)
			if err != nil {
				return err
			}

			message, _ := cmd.Flags().GetString("message")
			if message == "" {
				message = strings.Join(args, " ")
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			renderer := render.New(sp, message, render.Options{
				Fancy:   cfg.UI == config.UIFancy,
				NoColor: cfg.NoColor,
			})

			// The command's output is buffered and replayed after the
			// spinner line is finalized, so the two never interleave.
			var output bytes.Buffer
			child := exec.CommandContext(ctx, args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = &output
			child.Stderr = &output

			logger.Debug(ctx, "Running command", "cmd", args[0], "spinner", sp.Name)

			renderer.Start()
			runErr := child.Run()
			renderer.Stop(runErr == nil)

			if output.Len() > 0 {
				_, _ = output.WriteTo(cmd.OutOrStdout())
			}

			if runErr != nil {
				return fmt.Errorf("command failed: %w", runErr)
			}
			return nil
		},
	}
	cmd.Flags().String("spinner", "", "spinner name (default from config)")
	cmd.Flags().String("message", "", "text shown next to the spinner")
	return cmd
}
