// Package rewrite implements the line classification and content-rewrite
// engine that strips routed lines out of daily notes.
package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vaultglass/vaultglass/internal/constants"
)

// Rule maps a literal line prefix to the sink that receives matching lines.
type Rule struct {
	Prefix string
	Sink   string
}

type LineKind int

const (
	LinePlain LineKind = iota
	LineAction
)

// ClassifiedLine is the outcome of classifying a single note line. Action
// lines carry the destination sink and the cleaned payload; plain lines
// carry the text with the unprocessed tag removed.
type ClassifiedLine struct {
	Kind LineKind
	Sink string
	Text string
}

// ErrUnmatchedAction marks a line whose shape announces an action line
// without completing any registered prefix. The run aborts rather than
// silently passing such a line through as prose.
var ErrUnmatchedAction = errors.New("line looks like an action but matches no registered prefix")

// linkPattern matches [[Target]] and [[Alias|Target]] wiki links, capturing
// the canonical target.
var linkPattern = regexp.MustCompile(`\[\[(?:[^\]]*?\|)?([^\]]*?)\]\]`)

// Classify resolves one line against the ordered rule list; the first
// matching prefix wins. A line that begins with a rule's prefix minus its
// trailing whitespace, without completing the full prefix, is an
// ErrUnmatchedAction. Every other line is plain.
func Classify(line string, rules []Rule) (ClassifiedLine, error) {
	for _, rule := range rules {
		if strings.HasPrefix(line, rule.Prefix) {
			return ClassifiedLine{
				Kind: LineAction,
				Sink: rule.Sink,
				Text: cleanAction(line, rule.Prefix),
			}, nil
		}
	}

	for _, rule := range rules {
		head := strings.TrimRight(rule.Prefix, " \t")
		if head != rule.Prefix && head != "" && strings.HasPrefix(line, head) {
			return ClassifiedLine{}, fmt.Errorf("%w: %q", ErrUnmatchedAction, line)
		}
	}

	text := strings.ReplaceAll(line, constants.UnprocessedTag, "")
	return ClassifiedLine{Kind: LinePlain, Text: strings.TrimRight(text, " \t\r")}, nil
}

// cleanAction strips the matched prefix, collapses wiki links down to their
// target, and trims surrounding whitespace.
func cleanAction(line, prefix string) string {
	unprefixed := strings.TrimPrefix(line, prefix)
	unlinked := linkPattern.ReplaceAllString(unprefixed, "$1")
	return strings.TrimSpace(unlinked)
}
