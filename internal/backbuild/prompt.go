package backbuild

import (
	"fmt"
	"strings"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/lang"
)

const decomposeSystemPrompt = `You are a Pimsleur-method curriculum writer decomposing target-language phrases for backward-build drilling.

Rules:
- Split each phrase into 2 to 4 chunks a learner can pronounce in isolation.
- List the chunks in backward-build order: the final chunk of the phrase first, then progressively longer tail segments. The last chunk may be the full phrase.
- Every chunk must be a contiguous piece of the original phrase that ends where the phrase ends. Never reorder or reword.
- Break at natural boundaries (particle groups, clause edges), never mid-word.
- Give each chunk a short natural translation of what that fragment conveys.
- Respond with a single JSON object mapping each phrase's index (string key) to its ordered chunk array.
- Each chunk is an object: {"text": "...", "translation": "..."}.
- Output raw JSON only. No commentary, no markdown fences.`

// buildDecomposeMessage lists the pending phrases tagged with their
// original indices.
func buildDecomposeMessage(items []content.CoreItem, pending []int, c lang.Code) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target language: %s\n", lang.DisplayName(c))
	fmt.Fprintf(&b, "Phrases to decompose:\n\n")
	for _, i := range pending {
		fmt.Fprintf(&b, "[%d] %s (%s)\n", i, items[i].Text, items[i].Translation)
	}

	return b.String()
}
