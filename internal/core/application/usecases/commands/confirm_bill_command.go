package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"
)

var ErrConfirmBillCommandIsNotConstructed = errors.New(
	"ConfirmBillCommand must be created via NewConfirmBillCommand constructor",
)

// ConfirmBillCommand completes every ready order of a bill, typically when
// the table pays.
type ConfirmBillCommand struct {
	code kernel.BillCode

	guard guard.ConstructorGuard
}

func NewConfirmBillCommand(code string) (ConfirmBillCommand, error) {
	billCode, err := kernel.NewBillCode(code)
	if err != nil {
		return ConfirmBillCommand{}, err
	}

	return ConfirmBillCommand{
		code:  billCode,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmBillCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBillCommandIsNotConstructed)
}

func (c ConfirmBillCommand) Code() kernel.BillCode {
	return c.code
}
