package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"
)

var ErrCancelBillCommandIsNotConstructed = errors.New(
	"CancelBillCommand must be created via NewCancelBillCommand constructor",
)

// CancelBillCommand cancels every pending order of a bill at once.
type CancelBillCommand struct {
	code kernel.BillCode

	guard guard.ConstructorGuard
}

func NewCancelBillCommand(code string) (CancelBillCommand, error) {
	billCode, err := kernel.NewBillCode(code)
	if err != nil {
		return CancelBillCommand{}, err
	}

	return CancelBillCommand{
		code:  billCode,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CancelBillCommand) Validate() error {
	return c.guard.Validate(ErrCancelBillCommandIsNotConstructed)
}

func (c CancelBillCommand) Code() kernel.BillCode {
	return c.code
}
