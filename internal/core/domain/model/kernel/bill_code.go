package kernel

import (
	"fmt"
	"strings"

	"tableorder/internal/pkg/errs"
)

const maxBillCodeLength = 64

// BillCode groups every order placed during one table session into a single
// payable bill. It is also the receipt code once the bill starts completing.
type BillCode struct {
	value string
}

func NewBillCode(value string) (BillCode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return BillCode{}, errs.NewValueIsRequiredError("bill code")
	}
	if len(value) > maxBillCodeLength {
		return BillCode{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"bill code length", len(value), 1, maxBillCodeLength,
			fmt.Errorf("bill code %q is too long", value[:16]+"..."),
		)
	}
	return BillCode{value: value}, nil
}

func (c BillCode) String() string {
	return c.value
}

func (c BillCode) IsEqual(other BillCode) bool {
	return c.value == other.value
}

func (c BillCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("bill code must be created via NewBillCode")
	}
	return nil
}
