package receipt

import (
	"context"
	"sort"
	"sync"
	"time"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	receipts []Receipt
	Err      error
}

func NewRepositoryStub(receipts ...Receipt) *RepositoryStub {
	return &RepositoryStub{receipts: receipts}
}

func (r *RepositoryStub) Add(receipt Receipt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts = append(r.receipts, receipt)
}

func (r *RepositoryStub) FetchReceipts(ctx context.Context, projectId int, from, to time.Time) ([]Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]Receipt, 0)
	for _, receipt := range r.receipts {
		if receipt.ProjectId != projectId || receipt.Date.Before(from) || receipt.Date.After(to) {
			continue
		}
		result = append(result, receipt)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}
