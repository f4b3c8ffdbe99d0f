package model

// Outcome classifies the result of an update or remove operation so that
// callers can assert on what happened instead of inspecting side effects.
type Outcome string

const (
	// OutcomeApplied means the mutation was applied and persisted.
	OutcomeApplied Outcome = "applied"

	// OutcomeNotFound means no record with the given id exists; the
	// collection is unchanged. This is a no-op, not an error.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeDeclined means the caller did not confirm the operation;
	// the collection is unchanged.
	OutcomeDeclined Outcome = "declined"
)

// MutationResult reports the outcome of an update or remove call.
type MutationResult struct {
	Outcome Outcome `json:"outcome"`
}

// Applied reports whether the mutation changed state.
func (r MutationResult) Applied() bool {
	return r.Outcome == OutcomeApplied
}
