package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whirl-cli/whirl/internal/spinner"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [flags] <file>",
		Short: "Validates a spinner definitions file",
		Long:  `whirl validate [--strict] spinners.json`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)

			mode := cfg.Matching
			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				mode = spinner.MatchStrict
			}

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open spinner file: %w", err)
			}
			defer func() { _ = f.Close() }()

			defs, findings := spinner.DecodeAll(f, mode)
			for _, finding := range findings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, finding)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%s: %d problem(s) found", path, len(findings))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d spinner definition(s) OK (%s matching)\n", path, len(defs), mode)
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "require exact-case keys and reject unknown ones")
	return cmd
}
