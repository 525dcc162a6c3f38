package visits

import (
	"context"
	"fmt"
	"time"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/infra"
	"github.com/meaeduarda/cronossolutions/internal/sqlinline"
)

// PostgresStore persists visits in the visits table.
type PostgresStore struct {
	sql infra.SQLExecutor
}

func NewPostgresStore(sql infra.SQLExecutor) *PostgresStore {
	return &PostgresStore{sql: sql}
}

// EnsureSchema creates the visits table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.sql.Exec(ctx, sqlinline.QCreateVisitsTable); err != nil {
		return fmt.Errorf("visits: create table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Touch(ctx context.Context, visitorID string, now time.Time) (*domain.Visit, error) {
	var prev *time.Time
	if err := s.sql.QueryRow(ctx, sqlinline.QTouchVisit, visitorID, now.UTC()).Scan(&prev); err != nil {
		return nil, fmt.Errorf("visits: touch: %w", err)
	}
	if prev == nil {
		return nil, nil
	}
	return &domain.Visit{VisitorID: visitorID, LastVisit: prev.UTC()}, nil
}

func (s *PostgresStore) Get(ctx context.Context, visitorID string) (*domain.Visit, error) {
	var v domain.Visit
	if err := s.sql.QueryRow(ctx, sqlinline.QSelectVisit, visitorID).Scan(&v.VisitorID, &v.LastVisit); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("visits: get: %w", err)
	}
	v.LastVisit = v.LastVisit.UTC()
	return &v, nil
}

var _ domain.VisitRepository = (*PostgresStore)(nil)
