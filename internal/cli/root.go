package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/takt/internal/logging"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking TAKT_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("TAKT_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the takt CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "takt",
		Short: "takt is a greedy job-shop scheduler",
		Long:  "takt solves job-shop instances with a greedy stage dispatch, renders Gantt charts, and manages solve history on a takt server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "takt server URL (or TAKT_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSolveCmd(),
		newSubmitCmd(),
		newListCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newGenCmd(),
	)

	return root
}
