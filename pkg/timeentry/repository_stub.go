package timeentry

import (
	"context"
	"sort"
	"sync"
)

// RepositoryStub keeps entries in memory and applies filters and ordering like the database does.
type RepositoryStub struct {
	mu      sync.RWMutex
	entries []TimeEntry
	nextId  int
	Err     error
}

func NewRepositoryStub(entries ...TimeEntry) *RepositoryStub {
	stub := &RepositoryStub{nextId: 1}
	for _, entry := range entries {
		stub.Add(entry)
	}
	return stub
}

// Add stores an entry, assigning an id when it has none.
func (r *RepositoryStub) Add(entry TimeEntry) TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.Id == 0 {
		entry.Id = r.nextId
	}
	if entry.Id >= r.nextId {
		r.nextId = entry.Id + 1
	}
	r.entries = append(r.entries, entry)
	return entry
}

func (r *RepositoryStub) FetchTimeEntries(ctx context.Context, filter Filter) ([]TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	result := make([]TimeEntry, 0)
	for _, entry := range r.entries {
		if filter.Matches(entry) {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		if a.ProjectNumber != b.ProjectNumber {
			return a.ProjectNumber < b.ProjectNumber
		}
		return a.Id < b.Id
	})
	return result, nil
}
