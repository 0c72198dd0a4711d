package search

import (
	"html"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/softco/smartdraft/internal/contract"
)

// Engine limits. The cap and snippet width are part of the ranking
// contract, not tunables.
const (
	MaxResults      = 5
	MinTokenRunes   = 2
	SnippetChars    = 120
	TitleTokenBonus = 3
	MaxMatchPercent = 99
)

// Item is a single ranked search hit.
type Item struct {
	Clause contract.Clause `json:"clause"`

	// Score is the raw token-occurrence count plus title bonuses.
	// Higher is more relevant; always > 0 for returned items.
	Score int `json:"score"`

	// Snippet is HTML-safe: user-visible content is escaped; only
	// <b>...</b> highlight tags are present.
	Snippet string `json:"snippet"`

	// MatchPercent is a capped display value derived from Score.
	// It plays no part in ranking.
	MatchPercent int `json:"match_percent"`
}

// Result is the outcome of one search invocation.
type Result struct {
	Query  string              `json:"query"`
	Filter contract.ClauseType `json:"filter"`

	// Empty is true when the query normalized to zero usable tokens.
	// It distinguishes "no query" from "no matches" for callers.
	Empty bool `json:"empty"`

	Items []Item `json:"items"`
}

// Search tokenizes the query, scores every clause passing the type
// filter, and returns the top results ranked by score. It is pure and
// synchronous given (query, filter, index); debouncing keystrokes is the
// caller's concern.
func Search(ix *contract.Index, query string, filter contract.ClauseType) Result {
	result := Result{
		Query:  query,
		Filter: filter,
		Items:  []Item{},
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		result.Empty = true
		return result
	}

	for _, c := range ix.All() {
		if filter != "" && filter != contract.TypeAll && c.Type != filter {
			continue
		}

		score := scoreClause(c, tokens)
		if score == 0 {
			continue
		}

		result.Items = append(result.Items, Item{
			Clause:       c,
			Score:        score,
			Snippet:      buildSnippet(c.Text, tokens),
			MatchPercent: matchPercent(score),
		})
	}

	// Stable sort keeps document order for equal scores.
	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].Score > result.Items[j].Score
	})

	if len(result.Items) > MaxResults {
		result.Items = result.Items[:MaxResults]
	}

	return result
}

// Tokenize lowercases, trims, and splits the query on whitespace,
// discarding tokens shorter than two runes.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= MinTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// scoreClause sums case-insensitive body occurrences per token, plus a
// flat title bonus for each token appearing anywhere in the title
// (per token, not per occurrence).
func scoreClause(c contract.Clause, tokens []string) int {
	body := strings.ToLower(c.Text)
	title := strings.ToLower(c.Title)

	score := 0
	for _, tok := range tokens {
		score += strings.Count(body, tok)
		if strings.Contains(title, tok) {
			score += TitleTokenBonus
		}
	}
	return score
}

// matchPercent maps a raw score onto a capped display percentage.
// The score is an unbounded count, so the display value saturates at 99
// rather than ever claiming certainty.
func matchPercent(score int) int {
	pct := score * 12
	if pct > MaxMatchPercent {
		return MaxMatchPercent
	}
	return pct
}

// buildSnippet truncates the clause body to the display width and wraps
// each case-insensitive token occurrence in <b> tags. User content is
// escaped; only our highlight tags survive as markup.
func buildSnippet(text string, tokens []string) string {
	truncated, cut := truncate(text, SnippetChars)
	snippet := Highlight(truncated, tokens)
	if cut {
		snippet += "..."
	}
	return snippet
}

// truncate cuts s to at most maxRunes runes, never splitting a rune.
func truncate(s string, maxRunes int) (string, bool) {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}

	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i], true
		}
		n++
	}
	return s, false
}

// Highlight wraps each case-insensitive occurrence of any token in
// <b>...</b>, HTML-escaping everything else. When occurrences overlap,
// the earliest match wins and scanning resumes past its end.
func Highlight(s string, tokens []string) string {
	if len(tokens) == 0 {
		return html.EscapeString(s)
	}

	lower := strings.ToLower(s)
	var b strings.Builder

	pos := 0
	for pos < len(s) {
		start, length := nextMatch(lower[pos:], tokens)
		if start < 0 {
			b.WriteString(html.EscapeString(s[pos:]))
			break
		}

		matchStart := pos + start
		matchEnd := matchStart + length

		b.WriteString(html.EscapeString(s[pos:matchStart]))
		b.WriteString("<b>")
		b.WriteString(html.EscapeString(s[matchStart:matchEnd]))
		b.WriteString("</b>")

		pos = matchEnd
	}

	return b.String()
}

// nextMatch finds the earliest token occurrence in s. Ties on position
// go to the longest token so "liability" beats "li". Returns start
// offset and match length, or (-1, 0) when nothing matches.
func nextMatch(s string, tokens []string) (int, int) {
	best, bestLen := -1, 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		idx := strings.Index(s, tok)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best || (idx == best && len(tok) > bestLen) {
			best = idx
			bestLen = len(tok)
		}
	}
	return best, bestLen
}
