package settings

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/utils"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, settings Settings) (Settings, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) Update(ctx context.Context, settings Settings) (Settings, error) {
	if err := settings.Validate(); err != nil {
		log.Debugf("rejected settings update: %v", err)
		return Settings{}, err
	}
	now := s.clock.Now()
	settings.ModifiedDate = &now
	return s.repo.Update(ctx, settings)
}
