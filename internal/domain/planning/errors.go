package planning

import "errors"

var (
	// ErrInfeasible indicates the constraint model admitted no solution.
	// The all-zero decision is always feasible, so this is a logic error in
	// model construction, never an expected outcome.
	ErrInfeasible = errors.New("constraint model infeasible: model construction logic error")

	// ErrFlowViolation indicates a decision violating the inventory flow identity
	ErrFlowViolation = errors.New("inventory flow identity violated")

	// ErrNoCandidates indicates a search with no evaluable candidates
	ErrNoCandidates = errors.New("no candidate strategies to evaluate")

	// ErrCandidateLimit indicates the bounded candidate budget was exceeded
	ErrCandidateLimit = errors.New("candidate limit exceeded")
)
