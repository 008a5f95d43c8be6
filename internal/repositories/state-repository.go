package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gestion-medios/internal/entities"
	apperrors "gestion-medios/pkg/errors"
)

type StateRepositoryInterface interface {
	GetStates(ctx context.Context) ([]entities.State, error)
	FindState(ctx context.Context, id int) (*entities.State, error)
}

type StateRepository struct {
	storage *pgxpool.Pool
}

func NewStateRepository(storage *pgxpool.Pool) StateRepositoryInterface {
	return &StateRepository{storage: storage}
}

func (r *StateRepository) GetStates(ctx context.Context) ([]entities.State, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, code FROM states ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []entities.State
	for rows.Next() {
		var state entities.State
		if err := rows.Scan(&state.ID, &state.Name, &state.Code); err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, rows.Err()
}

func (r *StateRepository) FindState(ctx context.Context, id int) (*entities.State, error) {
	var state entities.State
	err := r.storage.QueryRow(ctx, "SELECT id, name, code FROM states WHERE id = $1", id).
		Scan(&state.ID, &state.Name, &state.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}
