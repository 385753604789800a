package interfaces

import "context"

// INumberGenerator yields the next human-readable sequence number
// ("<PREFIX>-<year>-NNNN") for one entity type; the prefix is fixed at
// construction.
//
// The default implementation reads the current maximum from the store and
// increments it, which is not race-free under concurrent creation (two
// callers can observe the same maximum). See the atomic counter
// implementation for the race-free alternative.

type INumberGenerator interface {
	Next(ctx context.Context, year int) (string, error)
}

// ISequenceSource is the slice of a repository the read-then-compute
// generator needs: the lexicographically greatest persisted number starting
// with the given prefix, or "" when the year has none yet.
type ISequenceSource interface {
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
