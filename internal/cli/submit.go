package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/takt/pkg/model"
)

func newSubmitCmd() *cobra.Command {
	var heuristic string
	var name string

	cmd := &cobra.Command{
		Use:   "submit <instance-file>",
		Short: "Solve an instance on the server and persist the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read instance: %w", err)
			}
			format := "text"
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".yaml", ".yml":
				format = "yaml"
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			resp, err := client.Post("/api/v1/solve", map[string]string{
				"name":      name,
				"heuristic": heuristic,
				"format":    format,
				"instance":  string(data),
			})
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}

			var run model.Run
			if err := json.Unmarshal(resp.Data, &run); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			fmt.Printf("%s  makespan=%d  (%d jobs on %d machines, %s)\n",
				run.ID, run.Makespan, run.Jobs, run.Machines, run.Heuristic)
			return nil
		},
	}

	cmd.Flags().StringVar(&heuristic, "heuristic", "lpt", "Heuristic name or js:<expr>")
	cmd.Flags().StringVar(&name, "name", "", "Run name (default: instance file name)")

	return cmd
}
