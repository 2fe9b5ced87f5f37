package config

// ServerConfig holds configuration for the takt server.
type ServerConfig struct {
	Addr      string // Listen address (default ":8080")
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: text, json
	DBPath    string // SQLite database path (default ~/.takt/takt.db, ":memory:" for testing)
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// SolveConfig holds configuration for a local solve.
type SolveConfig struct {
	Heuristic string // Built-in name or "js:<expr>"
	ColorMode string // auto, always, never
	Chart     bool   // Render the Gantt chart alongside the summary
}

// DefaultSolveConfig returns sensible defaults.
func DefaultSolveConfig() SolveConfig {
	return SolveConfig{
		Heuristic: "lpt",
		ColorMode: "auto",
	}
}
