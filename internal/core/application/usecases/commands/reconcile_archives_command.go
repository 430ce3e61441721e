package commands

import (
	"errors"

	"tableorder/internal/pkg/errs"
	"tableorder/internal/pkg/guard"
)

var ErrReconcileArchivesCommandIsNotConstructed = errors.New(
	"ReconcileArchivesCommand must be created via NewReconcileArchivesCommand constructor",
)

const maxReconcileBatch = 500

// ReconcileArchivesCommand archives completed orders that have no archive
// entry, at most batchSize per run.
type ReconcileArchivesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewReconcileArchivesCommand(batchSize int) (ReconcileArchivesCommand, error) {
	if batchSize < 1 || batchSize > maxReconcileBatch {
		return ReconcileArchivesCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxReconcileBatch)
	}

	return ReconcileArchivesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileArchivesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileArchivesCommandIsNotConstructed)
}

func (c ReconcileArchivesCommand) BatchSize() int {
	return c.batchSize
}
