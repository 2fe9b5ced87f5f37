package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/takt/internal/dataset"
)

func newGenCmd() *cobra.Command {
	var jobs, machines int
	var minDur, maxDur int64
	var seed int64

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random instance on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			inst, err := dataset.Generate(jobs, machines, minDur, maxDur, seed)
			if err != nil {
				return err
			}
			fmt.Print(dataset.EncodeText(inst))
			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 6, "Job count")
	cmd.Flags().IntVar(&machines, "machines", 4, "Machine count (each job visits every machine once)")
	cmd.Flags().Int64Var(&minDur, "min", 1, "Minimum operation duration")
	cmd.Flags().Int64Var(&maxDur, "max", 9, "Maximum operation duration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")

	return cmd
}
