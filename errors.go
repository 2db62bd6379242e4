package selectgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/selectgo/internal/mom"
)

// ErrInvalidRank indicates a rank outside [1, length], including any
// rank requested against an empty slice.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRank struct {
	Rank   int
	Length int
	cause  error
}

func (e *ErrInvalidRank) Error() string {
	return fmt.Sprintf("invalid rank: %d (length %d)", e.Rank, e.Length)
}

func (e *ErrInvalidRank) Unwrap() error { return e.cause }

func translateError(err error, k, n int) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mom.ErrInvalidRank) {
		return &ErrInvalidRank{Rank: k, Length: n, cause: err}
	}

	return err
}
