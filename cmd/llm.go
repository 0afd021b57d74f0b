package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/convolab/lessonsmith/internal/llm"
	"github.com/convolab/lessonsmith/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM call audit log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Purpose is not a query-level filter; over-fetch, then trim to
		// the requested page size after filtering.
		fetchLimit := limit
		if purpose != "" && limit > 0 {
			fetchLimit = limit * 5
		}

		ctx := context.Background()
		events, err := st.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: fetchLimit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-12s  %-16s  %-28s  %13s  %6s  %s\n",
			"ID", "Time", "Purpose", "Model", "Tokens", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 94))

		shown := 0
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			if limit > 0 && shown == limit {
				break
			}
			shown++

			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-12s  %-16s  %-28s  %13s  %6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("Jan 02 15:04"),
				e.Purpose,
				truncate(e.Model, 28),
				fmt.Sprintf("%d/%d", e.InputTokens, e.OutputTokens),
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one LLM call with its request and response bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		e, err := st.EventRepo().GetLLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		field := func(label, value string) {
			fmt.Printf("%-10s %s\n", label+":", value)
		}

		field("ID", strconv.Itoa(e.ID))
		field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		field("Provider", e.Provider)
		field("Model", e.Model)
		field("Purpose", e.Purpose)
		field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
		field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
		field("Success", strconv.FormatBool(e.Success))
		if c := llm.LookupCost(e.Model); c != nil {
			field("Cost", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
		}
		if e.ErrorMessage != "" {
			field("Error", e.ErrorMessage)
		}

		sep := strings.Repeat("─", 60)
		section := func(title, body string) {
			fmt.Println(sep)
			fmt.Println(title)
			fmt.Println(sep)
			if body == "" {
				body = "(not captured)"
			}
			fmt.Println(body)
		}

		fmt.Println()
		section("REQUEST", e.RequestBody)
		section("RESPONSE", e.ResponseBody)

		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		byPurpose, err := st.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}
		printPurposeUsage(byPurpose)

		byModel, err := st.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Println()
			printModelCost(byModel)
		}
		return nil
	},
}

func printPurposeUsage(rows []store.PurposeUsage) {
	const format = "%-16s  %6s  %10s  %10s  %8s\n"
	sep := strings.Repeat("─", 58)

	fmt.Println("Usage by Purpose")
	fmt.Println(sep)
	fmt.Printf(format, "Purpose", "Calls", "In", "Out", "Avg Ms")
	fmt.Println(sep)

	var calls, in, out int
	for _, u := range rows {
		fmt.Printf(format, u.Purpose, strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens),
			strconv.FormatInt(u.AvgLatencyMs, 10))
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}

	fmt.Println(sep)
	fmt.Printf(format, "TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), "")
}

func printModelCost(rows []store.ModelUsage) {
	const format = "%-32s  %6s  %15s  %9s\n"
	sep := strings.Repeat("─", 68)

	fmt.Println("Estimated Cost (USD)")
	fmt.Println(sep)
	fmt.Printf(format, "Model", "Calls", "Tokens", "Cost")
	fmt.Println(sep)

	var total float64
	var unpriced []string
	for _, u := range rows {
		costCol := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			costCol = formatCost(usd)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Printf(format, truncate(u.Model, 32), strconv.Itoa(u.Calls),
			fmt.Sprintf("%d/%d", u.InputTokens, u.OutputTokens), costCol)
	}

	fmt.Println(sep)
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf(format, label, "", "", formatCost(total))

	if len(unpriced) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

// truncate cuts s to max runes. Detail columns can carry CJK text, so
// byte slicing could split a rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Max rows to print")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls tagged with this purpose (sentence-split, vocab-extract, phrase-decompose, pi-generate)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
