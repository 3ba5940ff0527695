package project

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	projects []Project
	Err      error
}

func NewRepositoryStub(projects ...Project) *RepositoryStub {
	return &RepositoryStub{projects: projects}
}

func (r *RepositoryStub) Add(project Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, project)
}

func (r *RepositoryStub) FetchProjects(ctx context.Context, customerId int, includeInactive bool) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		if customerId != 0 && p.CustomerId != customerId {
			continue
		}
		if !includeInactive && !p.IsActive {
			continue
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CustomerName != result[j].CustomerName {
			return result[i].CustomerName < result[j].CustomerName
		}
		return result[i].ProjectNumber < result[j].ProjectNumber
	})
	return result, nil
}
