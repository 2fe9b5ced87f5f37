package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/takt/internal/config"
	"github.com/me/takt/internal/dataset"
	"github.com/me/takt/internal/render"
	"github.com/me/takt/internal/schedule"
	"github.com/me/takt/internal/scripthx"
)

func newSolveCmd() *cobra.Command {
	cfg := config.DefaultSolveConfig()
	var output string

	cmd := &cobra.Command{
		Use:   "solve <instance-file>",
		Short: "Solve an instance locally and print the result",
		Long: `Solves a job-shop instance on this machine, without a server.

The instance file is the classic text format (or YAML with a .yaml
extension). The heuristic is a built-in name (lpt, spt, mwr, order)
or a JavaScript expression prefixed with "js:", evaluated per job
pair with a, b, and stage in scope:

  takt solve shop.txt --heuristic 'js:a.remaining > b.remaining'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			h, check, err := scripthx.Resolve(cfg.Heuristic)
			if err != nil {
				return err
			}
			res, err := schedule.Solve(inst, h, logger)
			if err != nil {
				return err
			}
			if err := check(); err != nil {
				return err
			}

			if output == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			if cfg.Chart {
				color, err := render.ForMode(render.ColorMode(cfg.ColorMode), os.Stdout)
				if err != nil {
					return err
				}
				fmt.Print(render.Chart(inst, res, color))
				fmt.Println()
			}
			fmt.Print(render.Summary(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Heuristic, "heuristic", cfg.Heuristic, "Heuristic name or js:<expr>")
	cmd.Flags().StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "Chart colors: auto, always, never")
	cmd.Flags().BoolVar(&cfg.Chart, "chart", false, "Print the Gantt chart before the summary")
	cmd.Flags().StringVarP(&output, "output", "o", "summary", "Output format: summary, json")

	return cmd
}
