package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// isWordRune reports whether r can appear in a completion word. Variable
// names contain letters, digits, '.', '-' and '_'; the sigils '$' and ':'
// start a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '.' || r == '-' || r == '_' || r == '$' || r == ':'
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace, operators,
// parentheses, and quotes. Returns an empty word when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isWordRune(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if !isWordRune(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// completion describes what the word at the cursor completes to.
type completion struct {
	sigil      string   // prefix kept in front of every candidate
	query      string   // word text after the sigil
	candidates []string // names offered for the query
}

// complete returns the completion for the word at the cursor. Expression
// variables complete after "$", commands complete after a leading ":", and
// the argument of :set, :unset complete to bare variable names.
func complete(input string, cursor int, names []string) (c completion, start, end int) {
	word, start, end := wordBounds(input, cursor)

	switch {
	case start == 0 && strings.HasPrefix(word, cmdPrefix):
		return completion{cmdPrefix, word[len(cmdPrefix):], commands}, start, end

	case strings.HasPrefix(word, "$"):
		return completion{"$", word[1:], names}, start, end

	case word != "" && isVarCommand(input[:start]):
		return completion{"", word, names}, start, end
	}

	return completion{}, start, end
}

// isVarCommand reports whether prefix is a command taking a variable name
// followed by the separating whitespace.
func isVarCommand(prefix string) bool {
	name, ok := strings.CutPrefix(prefix, cmdPrefix)
	if !ok || strings.TrimSpace(name) == name {
		return false
	}

	switch strings.TrimSpace(name) {
	case "set", "unset":
		return true
	default:
		return false
	}
}

// matches ranks the candidates of c against its query, best first. An empty
// query after a sigil lists every candidate in order.
func (c completion) matches() fuzzy.Matches {
	if len(c.candidates) == 0 {
		return nil
	}

	if c.query == "" {
		if c.sigil == "" {
			return nil
		}

		all := make(fuzzy.Matches, len(c.candidates))
		for i, s := range c.candidates {
			all[i] = fuzzy.Match{Str: s, Index: i}
		}

		return all
	}

	return fuzzy.Find(c.query, c.candidates)
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
