package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/exchange"
	"github.com/convolab/lessonsmith/internal/jobs"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/lessongen"
	"github.com/convolab/lessonsmith/internal/llm"
	"github.com/convolab/lessonsmith/internal/readings"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <dialogue.json>",
	Short: "Run the full lesson pipeline on a dialogue file",
	Long: `Read a scenario dialogue from a JSON file, run the lesson pipeline
(core phrase selection, backward-build decomposition, exchange extraction,
vocabulary, readings annotation), and write the finished lesson as JSON.

The dialogue file carries the language, title, target duration, and the
sentences; optionally a speaker voice roster, speaker role genders, and
relationship labels. Readings annotation for Japanese and Chinese calls
the sidecar services at LESSONSMITH_FURIGANA_URL and LESSONSMITH_PINYIN_URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().StringP("out", "o", "", "Write the lesson JSON to this file instead of stdout")
	assembleCmd.Flags().Int("min-core", lessongen.DefaultConfig().MinCoreItems, "Minimum core phrases to select")
	assembleCmd.Flags().Int("max-core", lessongen.DefaultConfig().MaxCoreItems, "Maximum core phrases to select")
}

// dialogueDoc is the assemble input file format.
type dialogueDoc struct {
	Language         lang.Code           `json:"language"`
	Title            string              `json:"title"`
	DurationMinutes  float64             `json:"duration_minutes"`
	SpeakerOneGender string              `json:"speaker_one_gender,omitempty"`
	SpeakerTwoGender string              `json:"speaker_two_gender,omitempty"`
	Voices           content.VoiceRoster `json:"voices,omitempty"`
	Relationships    map[string]string   `json:"relationships,omitempty"`
	Sentences        []content.Sentence  `json:"sentences"`
}

func runAssemble(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	doc, err := readDialogue(args[0])
	if err != nil {
		return err
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

	minCore, _ := cmd.Flags().GetInt("min-core")
	maxCore, _ := cmd.Flags().GetInt("max-core")

	annotator := readings.NewAnnotator(readings.NewFuriganaClient(), readings.NewPinyinClient(), logger)
	asm := lessongen.New(provider, annotator, eventRepo, &jobs.LogReporter{Logger: logger}, logger, lessongen.Config{
		MinCoreItems: minCore,
		MaxCoreItems: maxCore,
	})

	lesson, err := asm.Assemble(ctx, lessongen.AssembleParams{
		Sentences:        doc.Sentences,
		Lang:             doc.Language,
		Title:            doc.Title,
		DurationMinutes:  doc.DurationMinutes,
		Roster:           doc.Voices,
		SpeakerOneGender: exchange.Gender(doc.SpeakerOneGender),
		SpeakerTwoGender: exchange.Gender(doc.SpeakerTwoGender),
		Relationships:    doc.Relationships,
	})
	if err != nil {
		return fmt.Errorf("assemble lesson: %w", err)
	}

	return writeLesson(cmd, lesson)
}

func readDialogue(path string) (*dialogueDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dialogue file: %w", err)
	}

	var doc dialogueDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dialogue file: %w", err)
	}
	if doc.Language == "" {
		return nil, fmt.Errorf("dialogue file %s: language is required", path)
	}
	if doc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("dialogue file %s: duration_minutes must be positive", path)
	}
	if len(doc.Sentences) == 0 {
		return nil, fmt.Errorf("dialogue file %s: no sentences", path)
	}
	return &doc, nil
}

func writeLesson(cmd *cobra.Command, lesson *content.Lesson) error {
	data, err := json.MarshalIndent(lesson, "", "  ")
	if err != nil {
		return fmt.Errorf("encode lesson: %w", err)
	}
	data = append(data, '\n')

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write lesson: %w", err)
		}
		fmt.Printf("Lesson %s written to %s\n", lesson.ID, out)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
