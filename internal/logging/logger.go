package logging

import (
	"log/slog"
	"os"
)

// Setup installs a plain JSON-to-stdout logger as the process default.
// It runs before the database is up; once it is, main swaps in the
// MultiHandler so errors also land in system_logs.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
