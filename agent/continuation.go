package agent

import "github.com/hupe1980/tinyagent/core"

// ContinuationPolicy decides whether Run should keep prompting after a
// completed turn. Isolating the decision behind an interface lets a
// structured signal (e.g. an explicit stop reason) replace the surface-text
// heuristic without touching the loop.
type ContinuationPolicy interface {
	ShouldContinue(last core.Message) bool
}

// ContinuationFunc adapts a plain function to a ContinuationPolicy.
type ContinuationFunc func(last core.Message) bool

// ShouldContinue implements ContinuationPolicy.
func (f ContinuationFunc) ShouldContinue(last core.Message) bool { return f(last) }

// SubstringContinuation continues while the latest assistant text contains
// a marker substring, ignoring case. This mirrors the behavior of informal
// "reply 'continue' when unfinished" prompting; it inspects surface text
// only.
type SubstringContinuation struct {
	Marker string
}

// NewSubstringContinuation returns the default policy matching "continue".
func NewSubstringContinuation() SubstringContinuation {
	return SubstringContinuation{Marker: "continue"}
}

// ShouldContinue implements ContinuationPolicy.
func (p SubstringContinuation) ShouldContinue(last core.Message) bool {
	if p.Marker == "" {
		return false
	}
	return last.ContentContainsFold(p.Marker)
}
