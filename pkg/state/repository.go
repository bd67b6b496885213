package state

import "context"

// Repository handles ledger persistence.
type Repository interface {
	// Load retrieves the last saved state.
	// Returns an empty state and nil error if no state exists.
	// Returns an error only for actual read failures.
	Load(ctx context.Context) (State, error)

	// Save persists the current state atomically.
	Save(ctx context.Context, state State) error
}
