package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/whirl-cli/whirl/internal/spinner"
	"github.com/whirl-cli/whirl/internal/stringutil"
)

const (
	previewFrames = 10
	maxNameWidth  = 24
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists available spinners",
		Long:  `whirl list [--format=table|json]`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, _, reg, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "table":
				_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSpinnerTable(reg.All()))
				return err
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reg.All())
			default:
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
		},
	}
	cmd.Flags().String("format", "table", "output format (table or json)")
	return cmd
}

var listHeader = table.Row{
	"Name",
	"Frames",
	"Interval",
	"Preview",
}

func renderSpinnerTable(spinners []spinner.Spinner) string {
	listTable := table.NewWriter()
	listTable.AppendHeader(listHeader)
	listTable.AppendRows(lo.Map(spinners, func(s spinner.Spinner, _ int) table.Row {
		frames := s.Characters
		if len(frames) > previewFrames {
			frames = frames[:previewFrames]
		}
		return table.Row{
			stringutil.TruncString(s.Name, maxNameWidth),
			len(s.Characters),
			stringutil.FormatDuration(s.Interval()),
			strings.Join(frames, " "),
		}
	}))
	return listTable.Render()
}
