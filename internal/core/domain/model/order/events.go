package order

import "tableorder/internal/core/domain/model/kernel"

// StatusChanged is raised after a status write commits.
type StatusChanged struct {
	OrderID  int64
	Status   Status
	BillCode kernel.BillCode
}

func (o *Order) StatusChanged() StatusChanged {
	return StatusChanged{OrderID: o.id, Status: o.status, BillCode: o.code}
}
