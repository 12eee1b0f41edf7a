// Package repository defines read access to the dashboard's record tables.
// Implementations live in subpackages (e.g., memory).
package repository

import (
	"context"
	"errors"

	"radar/internal/model"
)

// ErrNotFound is returned when a record with the requested ID does not exist.
var ErrNotFound = errors.New("record not found")

// DocumentRepository returns document records in their seeded order.
type DocumentRepository interface {
	// Documents returns every document, preserving the order the store was seeded with.
	Documents(ctx context.Context) ([]model.Document, error)

	// FindDocument returns a document by its ID or ErrNotFound.
	FindDocument(ctx context.Context, id string) (*model.Document, error)

	// CountByStatus returns the number of documents per status, including zero counts.
	CountByStatus(ctx context.Context) (map[model.DocumentStatus]int, error)
}

// ActivityRepository returns the recent activity feed, newest first as seeded.
type ActivityRepository interface {
	Activities(ctx context.Context) ([]model.Activity, error)
}

// DashboardRepository returns the remaining dashboard tables.
type DashboardRepository interface {
	Stats(ctx context.Context) ([]model.Stat, error)
	Workflow(ctx context.Context) ([]model.WorkflowStage, error)
	Navigation(ctx context.Context) ([]model.NavItem, error)
}
