package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestion-medios/internal/entities"
	"gestion-medios/internal/repositories"
)

type fakeStateRepository struct {
	states []entities.State
	calls  int
	err    error
}

func (f *fakeStateRepository) GetStates(ctx context.Context) ([]entities.State, error) {
	f.calls++
	return f.states, f.err
}

func (f *fakeStateRepository) FindState(ctx context.Context, id int) (*entities.State, error) {
	for _, s := range f.states {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, errors.New("no encontrado")
}

type fakeCacheRepository struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{values: make(map[string]string)}
}

func (f *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return value, nil
}

func (f *fakeCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeCacheRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestGetStatesPopulatesCache(t *testing.T) {
	stateRepo := &fakeStateRepository{states: []entities.State{
		{ID: 1, Name: "La Habana", Code: "LHA"},
		{ID: 2, Name: "Matanzas", Code: "MTZ"},
	}}
	cache := newFakeCacheRepository()
	svc := NewStateService(stateRepo, cache, zap.NewNop())

	states, err := svc.GetStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 2)
	assert.Equal(t, 1, stateRepo.calls)
	assert.Contains(t, cache.values, "states:all")

	// La segunda lectura sale de la caché, sin tocar la BD.
	states, err = svc.GetStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 2)
	assert.Equal(t, 1, stateRepo.calls)
}

func TestGetStatesCacheFailureFallsThrough(t *testing.T) {
	stateRepo := &fakeStateRepository{states: []entities.State{{ID: 1, Name: "La Habana", Code: "LHA"}}}
	cache := newFakeCacheRepository()
	cache.getErr = errors.New("redis caído")
	cache.setErr = errors.New("redis caído")
	svc := NewStateService(stateRepo, cache, zap.NewNop())

	states, err := svc.GetStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 1)
}

func TestGetStatesCorruptCacheFallsThrough(t *testing.T) {
	stateRepo := &fakeStateRepository{states: []entities.State{{ID: 1, Name: "La Habana", Code: "LHA"}}}
	cache := newFakeCacheRepository()
	cache.values["states:all"] = "{esto no es json"
	svc := NewStateService(stateRepo, cache, zap.NewNop())

	states, err := svc.GetStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Equal(t, 1, stateRepo.calls)
}

func TestGetStatesRepositoryErrorPropagates(t *testing.T) {
	stateRepo := &fakeStateRepository{err: errors.New("sin conexión")}
	svc := NewStateService(stateRepo, newFakeCacheRepository(), zap.NewNop())

	_, err := svc.GetStates(context.Background())
	assert.EqualError(t, err, "sin conexión")
}
