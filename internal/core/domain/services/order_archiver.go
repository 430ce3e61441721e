package services

import (
	"time"

	"tableorder/internal/core/domain/model/archive"
	"tableorder/internal/core/domain/model/order"
)

// Archival is the pair of records written when an order completes. Receipt is
// only a candidate: the store keeps whichever receipt of the bill came first.
type Archival struct {
	Order   *archive.ArchivedOrder
	Receipt *archive.Receipt
}

// OrderArchiver builds archival records from completed orders.
//
// Example:
//
//	archival, err := services.NewOrderArchiver().Archive(o, time.Now())
//	if err != nil {
//	    return err
//	}
//	_ = archiveRepo.Add(ctx, archival.Order)
type OrderArchiver struct{}

func NewOrderArchiver() OrderArchiver {
	return OrderArchiver{}
}

// Archive snapshots o, which must already be completed, and issues the
// receipt that would point at the snapshot.
func (OrderArchiver) Archive(o *order.Order, at time.Time) (Archival, error) {
	archived, err := archive.Snapshot(o, at)
	if err != nil {
		return Archival{}, err
	}

	receipt, err := archive.ReceiptFor(archived)
	if err != nil {
		return Archival{}, err
	}

	return Archival{Order: archived, Receipt: receipt}, nil
}
