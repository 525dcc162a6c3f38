package visits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/sqlinline"
)

func TestMemoryStoreTouch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	prev, err := s.Touch(ctx, "v1", first)
	if err != nil || prev != nil {
		t.Fatalf("first Touch() = %v, %v; want nil, nil", prev, err)
	}
	prev, err = s.Touch(ctx, "v1", second)
	if err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if prev == nil || !prev.LastVisit.Equal(first) {
		t.Fatalf("Touch() previous = %+v, want %s", prev, first)
	}

	got, err := s.Get(ctx, "v1")
	if err != nil || !got.LastVisit.Equal(second) {
		t.Fatalf("Get() = %+v, %v", got, err)
	}
	if _, err := s.Get(ctx, "v2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}

type stubExecutor struct {
	queries []string
	args    [][]any
	row     stubRow
	execErr error
}

func (s *stubExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.queries = append(s.queries, query)
	s.args = append(s.args, args)
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	s.queries = append(s.queries, query)
	s.args = append(s.args, args)
	return s.row
}

type stubRow struct {
	prev *time.Time
	id   string
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch len(dest) {
	case 1:
		ptr, ok := dest[0].(**time.Time)
		if !ok {
			return errors.New("invalid dest")
		}
		*ptr = r.prev
	case 2:
		id, ok1 := dest[0].(*string)
		ts, ok2 := dest[1].(*time.Time)
		if !ok1 || !ok2 || r.prev == nil {
			return errors.New("invalid dest")
		}
		*id = r.id
		*ts = *r.prev
	default:
		return errors.New("unexpected dest count")
	}
	return nil
}

func TestPostgresStoreTouch(t *testing.T) {
	prev := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	exec := &stubExecutor{row: stubRow{prev: &prev}}
	s := NewPostgresStore(exec)

	now := time.Date(2025, 3, 3, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	got, err := s.Touch(context.Background(), "0b6f7a52-2f57-4d0e-9f7b-6c1f3f0d2a11", now)
	if err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	if got == nil || !got.LastVisit.Equal(prev) {
		t.Fatalf("Touch() = %+v, want previous %s", got, prev)
	}
	if exec.queries[0] != sqlinline.QTouchVisit {
		t.Fatalf("unexpected query: %s", exec.queries[0])
	}
	if ts, ok := exec.args[0][1].(time.Time); !ok || ts.Location() != time.UTC {
		t.Fatalf("timestamp should be stored in UTC, got %#v", exec.args[0][1])
	}
}

func TestPostgresStoreTouchFirstVisit(t *testing.T) {
	s := NewPostgresStore(&stubExecutor{row: stubRow{}})
	got, err := s.Touch(context.Background(), "id", time.Now())
	if err != nil || got != nil {
		t.Fatalf("Touch() = %+v, %v; want nil, nil", got, err)
	}
}

func TestPostgresStoreGet(t *testing.T) {
	last := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewPostgresStore(&stubExecutor{row: stubRow{id: "abc", prev: &last}})
	got, err := s.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.VisitorID != "abc" || !got.LastVisit.Equal(last) {
		t.Fatalf("Get() = %+v", got)
	}

	missing := NewPostgresStore(&stubExecutor{row: stubRow{err: pgx.ErrNoRows}})
	if _, err := missing.Get(context.Background(), "abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	exec := &stubExecutor{}
	if err := NewPostgresStore(exec).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error: %v", err)
	}
	if len(exec.queries) != 1 || exec.queries[0] != sqlinline.QCreateVisitsTable {
		t.Fatalf("unexpected queries: %v", exec.queries)
	}

	failing := &stubExecutor{execErr: errors.New("permission denied")}
	if err := NewPostgresStore(failing).EnsureSchema(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
