package cmd

import (
	"fmt"

	"github.com/convolab/lessonsmith/internal/logging"
	"github.com/convolab/lessonsmith/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "lessonsmith",
	Short: "Audio-first language lesson pipeline",
	Long: "Lessonsmith turns scenario dialogues into audio-first language lessons: " +
		"backward-build phrase drills, timed exchanges with vocabulary, and " +
		"grammar comprehension exercises.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LESSONSMITH_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Human-readable debug logging")

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(grammarCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath picks the database path: the --db flag wins, then
// LESSONSMITH_DB, then the XDG default.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the event store. The
// caller owns the returned store and must Close it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newLogger builds the command logger. --debug forces development output;
// otherwise LESSONSMITH_DEBUG decides.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return zap.NewDevelopment()
	}
	return logging.New()
}
