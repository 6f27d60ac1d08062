package search

// Reporter receives search events as they happen. Implementations are
// purely observational: nothing they do feeds back into the search.
type Reporter interface {
	// OnTrial is called after each probe with the candidate tested, the
	// classified outcome, and the completion percentage.
	OnTrial(trial Trial)

	// OnFinish is called exactly once when the search terminates.
	OnFinish(result Result)
}
