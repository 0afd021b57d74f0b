package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/convolab/lessonsmith/internal/grammar"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
	"github.com/convolab/lessonsmith/internal/pigen"
	"github.com/convolab/lessonsmith/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Generate a grammar comprehension exercise set",
	Long: `Generate a validated set of comprehension exercises for one grammar
contrast point at one proficiency level. The learner interprets sentences
containing the target form; they never produce it.

Failures are loud: a set that does not pass the validator chain makes the
command fail instead of emitting broken exercises.`,
	RunE: runExercise,
}

func init() {
	exerciseCmd.Flags().String("grammar-point", "", "Grammar point ID (see 'lessonsmith grammar list')")
	exerciseCmd.Flags().String("level", "", "Proficiency level (e.g. N5, N4, N3)")
	exerciseCmd.Flags().StringP("out", "o", "", "Write the exercise JSON to this file instead of stdout")
	_ = exerciseCmd.MarkFlagRequired("grammar-point")
	_ = exerciseCmd.MarkFlagRequired("level")
}

func runExercise(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pointID, _ := cmd.Flags().GetString("grammar-point")
	levelVal, _ := cmd.Flags().GetString("level")
	level := lang.Level(levelVal)

	point := grammar.GetPoint(pointID)
	if point == nil {
		return fmt.Errorf("unknown grammar point %q (see 'lessonsmith grammar list')", pointID)
	}
	if !grammar.ValidForLevel(pointID, level) {
		fmt.Fprintf(os.Stderr, "note: %s is taught at %s; generating at %s\n", point.ID, point.Level, level)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := pigen.New(provider, logger, pigen.DefaultConfig())
	session, err := gen.Generate(ctx, pigen.GenerateInput{PointID: pointID, Level: level})
	if err != nil {
		recordExercise(ctx, eventRepo, pointID, store.OutcomeFailed, err.Error(), 0, logger)
		return fmt.Errorf("generate exercises: %w", err)
	}
	recordExercise(ctx, eventRepo, pointID, store.OutcomeOK, "", len(session.Items), logger)

	return writeExercise(cmd, session)
}

// recordExercise audits the generation outcome. Exercise sets have no
// lesson; the grammar point ID keys the event instead.
func recordExercise(ctx context.Context, repo store.EventRepo, pointID, outcome, detail string, count int, logger *zap.Logger) {
	err := repo.AppendPipelineEvent(ctx, store.PipelineEventData{
		LessonID:  pointID,
		Stage:     store.StagePIGenerate,
		Outcome:   outcome,
		Detail:    detail,
		ItemCount: count,
	})
	if err != nil {
		logger.Warn("pipeline event not recorded", zap.Error(err))
	}
}

func writeExercise(cmd *cobra.Command, session *pigen.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode exercises: %w", err)
	}
	data = append(data, '\n')

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write exercises: %w", err)
		}
		fmt.Printf("%d exercises for %s written to %s\n", len(session.Items), session.GrammarPointID, out)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
