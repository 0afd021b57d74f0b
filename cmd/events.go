package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/convolab/lessonsmith/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show pipeline stage outcomes from the audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		lessonID, _ := cmd.Flags().GetString("lesson")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		if lessonID != "" {
			events, err := repo.PipelineEventsForLesson(ctx, lessonID)
			if err != nil {
				return fmt.Errorf("query lesson events: %w", err)
			}
			if len(events) == 0 {
				fmt.Printf("No events recorded for lesson %s.\n", lessonID)
				return nil
			}
			printLessonHistory(lessonID, events)
			return nil
		}

		events, err := repo.QueryPipelineEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No pipeline events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-14s  %-8s  %5s  %s\n",
			"ID", "Timestamp", "Lesson", "Stage", "Outcome", "Items", "Detail")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			fmt.Printf("%-5d  %-19s  %-10s  %-14s  %-8s  %5d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.LessonID, 10),
				e.Stage,
				e.Outcome,
				e.ItemCount,
				truncate(e.Detail, 40),
			)
		}
		return nil
	},
}

// printLessonHistory prints one lesson's stages in execution order, so a
// degraded build can be read top to bottom.
func printLessonHistory(lessonID string, events []store.PipelineEventRecord) {
	fmt.Printf("Lesson %s\n", lessonID)
	fmt.Println(strings.Repeat("─", 88))
	fmt.Printf("%-19s  %-14s  %-8s  %5s  %s\n",
		"Timestamp", "Stage", "Outcome", "Items", "Detail")
	fmt.Println(strings.Repeat("─", 88))

	for _, e := range events {
		fmt.Printf("%-19s  %-14s  %-8s  %5d  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Stage,
			e.Outcome,
			e.ItemCount,
			truncate(e.Detail, 40),
		)
	}
}

func init() {
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsCmd.Flags().StringP("lesson", "l", "", "Show the full stage history for one lesson ID")
}
