package rewrite

import "strings"

// Result is everything one note's rewrite produces: the items collected for
// each sink, the sink names in first-collection order, and the residual
// note text.
type Result struct {
	Collected map[string][]string
	Sinks     []string
	Residual  string
}

// Empty reports whether the rewrite stripped the note down to nothing.
func (r *Result) Empty() bool {
	return r.Residual == "\n"
}

// Rewrite classifies every line of a note against the ordered rules,
// collects action payloads per sink in input order, and returns the
// residual text with routed lines removed and newly empty sections pruned.
// Rewriting is idempotent: running it again over its own residual output
// yields the residual unchanged.
func Rewrite(text string, rules []Rule) (*Result, error) {
	res := &Result{Collected: make(map[string][]string)}
	var kept []string

	for _, line := range splitLines(text) {
		cl, err := Classify(line, rules)
		if err != nil {
			return nil, err
		}

		if cl.Kind == LineAction {
			if _, seen := res.Collected[cl.Sink]; !seen {
				res.Sinks = append(res.Sinks, cl.Sink)
			}
			res.Collected[cl.Sink] = append(res.Collected[cl.Sink], cl.Text)
			continue
		}

		kept = append(kept, cl.Text)
	}

	pruned := PruneEmptySections(kept)
	res.Residual = strings.TrimSpace(strings.Join(pruned, "\n")) + "\n"

	return res, nil
}

// splitLines splits on newlines without manufacturing a phantom empty line
// from a trailing newline.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
