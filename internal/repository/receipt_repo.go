package repository

import (
	"sync"

	"visaportal/internal/models"
)

// ReceiptRepo is a bounded in-memory log of redacted submission receipts,
// newest first, for the operator API. The portal keeps no database; once the
// ring wraps, the oldest receipts are gone.
type ReceiptRepo struct {
	mu       sync.Mutex
	receipts []models.Receipt
	capacity int
	total    int
}

func NewReceiptRepo(capacity int) *ReceiptRepo {
	if capacity <= 0 {
		capacity = 100
	}
	return &ReceiptRepo{capacity: capacity}
}

// Add records a receipt. Receipts are stored as given: they must already be
// redacted (the pipeline never puts a raw password in one).
func (r *ReceiptRepo) Add(receipt *models.Receipt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts = append(r.receipts, *receipt)
	if len(r.receipts) > r.capacity {
		r.receipts = r.receipts[len(r.receipts)-r.capacity:]
	}
	r.total++
}

// Recent returns up to limit receipts, newest first.
func (r *ReceiptRepo) Recent(limit int) []models.Receipt {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.receipts) {
		limit = len(r.receipts)
	}
	out := make([]models.Receipt, 0, limit)
	for i := len(r.receipts) - 1; i >= len(r.receipts)-limit; i-- {
		out = append(out, r.receipts[i])
	}
	return out
}

// Count returns the number of receipts recorded over the process lifetime,
// including ones the ring has since dropped.
func (r *ReceiptRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
