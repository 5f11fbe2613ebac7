package repository

import (
	"context"
	"database/sql"
	"time"

	"vitals_monitor/internal/models"
)

type EventRepo interface {
	Append(ctx context.Context, e models.RecordingEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.RecordingEvent, error)
	// DeleteBefore removes events strictly older than cutoff and reports how many.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
