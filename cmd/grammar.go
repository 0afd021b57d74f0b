package cmd

import (
	"fmt"
	"strings"

	"github.com/convolab/lessonsmith/internal/grammar"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Browse the grammar contrast taxonomy",
}

var grammarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List grammar points (optionally filtered by level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelVal, _ := cmd.Flags().GetString("level")

		var points []*grammar.Point
		if levelVal != "" {
			points = grammar.PointsByLevel(lang.Level(levelVal))
			if len(points) == 0 {
				return fmt.Errorf("no grammar points found for level %q", levelVal)
			}
		} else {
			points = grammar.AllPoints()
		}

		// Header.
		fmt.Printf("%-16s  %-20s  %-5s  %-14s  %s\n",
			"ID", "Name", "Level", "Category", "Description")
		fmt.Println(strings.Repeat("─", 110))

		for _, p := range points {
			desc := p.Description
			// Rune-wise truncation: descriptions embed CJK characters.
			if r := []rune(desc); len(r) > 48 {
				desc = string(r[:45]) + "..."
			}
			fmt.Printf("%-16s  %-20s  %-5s  %-14s  %s\n",
				p.ID, p.Name, p.Level, p.Category, desc)
		}

		fmt.Printf("\n%d grammar points\n", len(points))
		return nil
	},
}

func init() {
	grammarListCmd.Flags().String("level", "", "Filter by proficiency level (e.g. N5, N4, N3)")

	grammarCmd.AddCommand(grammarListCmd)
}
