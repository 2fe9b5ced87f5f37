package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/takt/pkg/model"
)

func newShowCmd() *cobra.Command {
	var chart bool
	var color bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run's makespan and start times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if chart {
				path := "/api/v1/runs/" + id + "/chart"
				if color {
					path += "?color=always"
				}
				text, err := client.GetText(path)
				if err != nil {
					return fmt.Errorf("fetch chart: %w", err)
				}
				fmt.Print(text)
				fmt.Println()
			}

			resp, err := client.Get("/api/v1/runs/" + id)
			if err != nil {
				return fmt.Errorf("fetch run: %w", err)
			}
			var run model.Run
			if err := json.Unmarshal(resp.Data, &run); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			fmt.Printf("%d\n", run.Makespan)
			for _, row := range run.Starts {
				for _, start := range row {
					fmt.Printf("%d ", start)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "Also print the Gantt chart")
	cmd.Flags().BoolVar(&color, "color", false, "Request ANSI colors in the chart")

	return cmd
}
