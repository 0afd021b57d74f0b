package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON document from raw model output. Models asked
// for bare JSON still wrap it in markdown fences or prose often enough that
// every caller parsing free-form output should go through here.
//
// Normalization: strip ```json fences, then slice from the first opening
// brace/bracket to the matching final one. Returns ErrInvalidResponse when
// no parseable document remains.
func ExtractJSON(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)

	// Fenced block wins if present.
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		// Language tag on the fence line.
		if j := strings.IndexByte(rest, '\n'); j >= 0 {
			rest = rest[j+1:]
		}
		if k := strings.Index(rest, "```"); k >= 0 {
			s = strings.TrimSpace(rest[:k])
		}
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no JSON object or array in response")}
	}

	var end int
	if s[start] == '{' {
		end = strings.LastIndexByte(s, '}')
	} else {
		end = strings.LastIndexByte(s, ']')
	}
	if end <= start {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("unterminated JSON in response")}
	}

	doc := []byte(s[start : end+1])
	if !json.Valid(doc) {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("extracted text is not valid JSON")}
	}
	return doc, nil
}
