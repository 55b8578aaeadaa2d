package setops

import (
	"errors"
	"fmt"

	"github.com/tuannh982/grocery-sets/setops/commons"
)

var (
	ErrPreconditionNotMet = errors.New("precondition not met")
	ErrUnknownOperation   = commons.ErrUnknownOperation
)

// CheckPreconditions reports whether op accepts selected collections.
func CheckPreconditions(op commons.OperationKind, selected int) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	lo, hi := op.MinCollections(), op.MaxCollections()
	if selected < lo {
		return fmt.Errorf("%w: %s needs at least %d collections, got %d", ErrPreconditionNotMet, op, lo, selected)
	}
	if hi >= 0 && selected > hi {
		if lo == hi {
			return fmt.Errorf("%w: %s needs exactly %d collections, got %d", ErrPreconditionNotMet, op, lo, selected)
		}
		return fmt.Errorf("%w: %s needs at most %d collections, got %d", ErrPreconditionNotMet, op, hi, selected)
	}
	return nil
}
