// Package memory implements the repository interfaces over an immutable go-memdb database.
// The database is written once by New and only read afterwards, so a Store is safe for
// concurrent use.
package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"radar/internal/model"
	"radar/internal/repository"
	"radar/internal/seed"
)

// ErrDuplicateID is returned by New when two records of the same table share an ID.
var ErrDuplicateID = errors.New("duplicate record id")

// Store serves the seeded record tables.
type Store struct {
	db *memdb.MemDB
}

var (
	_ repository.DocumentRepository  = (*Store)(nil)
	_ repository.ActivityRepository  = (*Store)(nil)
	_ repository.DashboardRepository = (*Store)(nil)
)

// New builds a Store from d in a single write transaction.
func New(d seed.Data) (*Store, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	for i, doc := range d.Documents {
		r := &row{Seq: seq(i), Key: doc.ID, Status: string(doc.Status), Value: doc}
		if err := insert(txn, tblDocuments, r); err != nil {
			return nil, err
		}
	}
	for i, act := range d.Activities {
		if err := insert(txn, tblActivities, &row{Seq: seq(i), Key: act.ID, Value: act}); err != nil {
			return nil, err
		}
	}
	for i, st := range d.Stats {
		if err := insert(txn, tblStats, &row{Seq: seq(i), Key: seq(i), Value: cloneStat(st)}); err != nil {
			return nil, err
		}
	}
	for i, w := range d.Workflow {
		if err := insert(txn, tblWorkflow, &row{Seq: seq(i), Key: seq(i), Value: w}); err != nil {
			return nil, err
		}
	}
	for i, n := range d.Navigation {
		if err := insert(txn, tblNavigation, &row{Seq: seq(i), Key: n.URL, Value: n}); err != nil {
			return nil, err
		}
	}

	txn.Commit()
	return &Store{db: db}, nil
}

func seq(i int) string {
	return fmt.Sprintf("%010d", i)
}

// insert refuses to overwrite: memdb would otherwise replace a row with the same unique id.
func insert(txn *memdb.Txn, table string, r *row) error {
	existing, err := txn.First(table, "id", r.Key)
	if err != nil {
		return fmt.Errorf("lookup %s %q: %w", table, r.Key, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s %q", ErrDuplicateID, table, r.Key)
	}
	if err := txn.Insert(table, r); err != nil {
		return fmt.Errorf("insert %s %q: %w", table, r.Key, err)
	}
	return nil
}

// list returns every value of table in seed order.
func list[T any](ctx context.Context, db *memdb.MemDB, table string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, "seq")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}

	items := make([]T, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		items = append(items, raw.(*row).Value.(T))
	}
	return items, nil
}

// Documents returns all documents in seed order.
func (s *Store) Documents(ctx context.Context) ([]model.Document, error) {
	return list[model.Document](ctx, s.db, tblDocuments)
}

// FindDocument fetches a single document by its ID.
func (s *Store) FindDocument(ctx context.Context, id string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", id)
	if err != nil {
		return nil, fmt.Errorf("find document %q: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("document %q: %w", id, repository.ErrNotFound)
	}
	doc := raw.(*row).Value.(model.Document)
	return &doc, nil
}

// CountByStatus returns how many documents carry each status. Every status is present in the
// result, with zero when no document has it.
func (s *Store) CountByStatus(ctx context.Context) (map[model.DocumentStatus]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	counts := make(map[model.DocumentStatus]int, len(model.DocumentStatuses()))
	for _, st := range model.DocumentStatuses() {
		it, err := txn.Get(tblDocuments, "status", string(st))
		if err != nil {
			return nil, fmt.Errorf("scan status %q: %w", st, err)
		}
		n := 0
		for raw := it.Next(); raw != nil; raw = it.Next() {
			n++
		}
		counts[st] = n
	}
	return counts, nil
}

// Activities returns the activity feed in seed order.
func (s *Store) Activities(ctx context.Context) ([]model.Activity, error) {
	return list[model.Activity](ctx, s.db, tblActivities)
}

// Stats returns the dashboard stat cards.
func (s *Store) Stats(ctx context.Context) ([]model.Stat, error) {
	stats, err := list[model.Stat](ctx, s.db, tblStats)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i] = cloneStat(stats[i])
	}
	return stats, nil
}

// Workflow returns the workflow progress stages.
func (s *Store) Workflow(ctx context.Context) ([]model.WorkflowStage, error) {
	return list[model.WorkflowStage](ctx, s.db, tblWorkflow)
}

// Navigation returns the sidebar routes.
func (s *Store) Navigation(ctx context.Context) ([]model.NavItem, error) {
	return list[model.NavItem](ctx, s.db, tblNavigation)
}

// cloneStat copies the Trend pointer so callers cannot reach stored data.
func cloneStat(st model.Stat) model.Stat {
	if st.Trend != nil {
		t := *st.Trend
		st.Trend = &t
	}
	return st
}
