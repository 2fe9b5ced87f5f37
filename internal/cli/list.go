package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/takt/pkg/model"
)

func newListCmd() *cobra.Command {
	var heuristic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/runs/"
			if heuristic != "" {
				path += "?heuristic=" + heuristic
			}
			resp, err := client.Get(path)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			var runs []model.Run
			if err := json.Unmarshal(resp.Data, &runs); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			if len(runs) == 0 {
				fmt.Println("No runs found.")
				return nil
			}

			fmt.Printf("%-41s  %-16s  %-10s  %8s  %s\n", "ID", "NAME", "HEURISTIC", "MAKESPAN", "CREATED")
			fmt.Printf("%-41s  %-16s  %-10s  %8s  %s\n", "----", "----", "---------", "--------", "-------")
			for _, run := range runs {
				fmt.Printf("%-41s  %-16s  %-10s  %8d  %s\n",
					run.ID, run.Name, run.Heuristic, run.Makespan, humanize.Time(run.CreatedAt))
			}

			if resp.Pagination != nil && resp.Pagination.HasMore {
				fmt.Printf("\n(%d of %d shown)\n", len(runs), resp.Pagination.Total)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&heuristic, "heuristic", "", "Only show runs solved with this heuristic")

	return cmd
}
