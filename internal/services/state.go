package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gestion-medios/internal/entities"
	"gestion-medios/internal/repositories"
)

const statesCacheKey = "states:all"
const statesCacheTTL = 10 * time.Minute

// StateService sirve el catálogo de regiones. Es casi de solo lectura, así
// que se cachea en Redis; cualquier fallo de la caché cae a la BD.
type StateService struct {
	stateRepository repositories.StateRepositoryInterface
	cacheRepository repositories.CacheRepositoryInterface
	logger          *zap.Logger
}

func NewStateService(
	stateRepository repositories.StateRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *StateService {
	return &StateService{
		stateRepository: stateRepository,
		cacheRepository: cacheRepository,
		logger:          logger,
	}
}

func (s *StateService) GetStates(ctx context.Context) ([]entities.State, error) {
	if cached, err := s.cacheRepository.Get(ctx, statesCacheKey); err == nil {
		var states []entities.State
		if err := json.Unmarshal([]byte(cached), &states); err == nil {
			return states, nil
		}
	}

	states, err := s.stateRepository.GetStates(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(states); err == nil {
		if err := s.cacheRepository.Set(ctx, statesCacheKey, string(encoded), statesCacheTTL); err != nil {
			s.logger.Debug("GetStates: no se pudo escribir la caché", zap.Error(err))
		}
	}
	return states, nil
}
