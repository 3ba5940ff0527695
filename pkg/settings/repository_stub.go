package settings

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	settings *Settings
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

// NewConfiguredRepositoryStub returns a stub that already holds settings.
func NewConfiguredRepositoryStub(settings Settings) *RepositoryStub {
	return &RepositoryStub{settings: &settings}
}

func (r *RepositoryStub) Get(ctx context.Context) (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return Settings{}, ErrSettingsNotConfigured
	}
	return *r.settings, nil
}

func (r *RepositoryStub) Update(ctx context.Context, settings Settings) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings != nil {
		settings.CreatedDate = r.settings.CreatedDate
	}
	r.settings = &settings
	return settings, nil
}

func (r *RepositoryStub) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = nil
}
