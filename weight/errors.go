package weight

import "fmt"

// InternalError reports a numerical invariant violated during weighting —
// e.g. the column-stochastic sanity guard in PageRank's power iteration.
type InternalError struct {
	Message string
}

func (e InternalError) Error() string {
	return fmt.Sprintf("weight: internal error: %s", e.Message)
}

func (e InternalError) Kind() string { return "InternalError" }
