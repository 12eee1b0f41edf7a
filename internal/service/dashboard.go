package service

import (
	"context"
	"errors"
	"fmt"

	"radar/internal/filter"
	"radar/internal/model"
	"radar/internal/presentation"
	"radar/internal/repository"
	"radar/internal/view"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("document not found")
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidKind   = errors.New("invalid activity kind")
)

// DocumentQuery is the search state of the document library.
// Status is "all", empty, or an exact document status.
type DocumentQuery struct {
	Term   string
	Status string
}

// DocumentRow is a document together with its rendered status badge.
type DocumentRow struct {
	model.Document
	Badge presentation.Badge `json:"badge"`
}

// DocumentListResult is the service-level DTO for the document library.
type DocumentListResult struct {
	Items   []DocumentRow       `json:"data"`
	Total   int                 `json:"total"`
	Search  string              `json:"search"`
	Status  string              `json:"status"`
	Options []view.StatusOption `json:"status_options"`
}

// ActivityItem is an activity feed entry with its icon and optional badge.
type ActivityItem struct {
	model.Activity
	Icon  string              `json:"icon"`
	Badge *presentation.Badge `json:"badge,omitempty"`
}

// StatCard is a stat with its resolved styles.
type StatCard struct {
	model.Stat
	Style     presentation.StatStyle  `json:"style"`
	TrendView *presentation.TrendView `json:"trend_view,omitempty"`
}

// Overview is everything the dashboard page shows.
type Overview struct {
	Stats      []StatCard            `json:"stats"`
	Workflow   []model.WorkflowStage `json:"workflow"`
	Activities []ActivityItem        `json:"activities"`
}

// DashboardService defines the read use cases behind the dashboard pages and API.
type DashboardService interface {
	// Overview returns stat cards, workflow progress and the activity feed.
	Overview(ctx context.Context) (*Overview, error)

	// Documents returns the document library filtered by q, in seed order.
	Documents(ctx context.Context, q DocumentQuery) (*DocumentListResult, error)

	// Document returns a single document by its ID.
	Document(ctx context.Context, id string) (*model.Document, error)

	// Activities returns the activity feed, optionally narrowed to one kind.
	Activities(ctx context.Context, kind string) ([]ActivityItem, error)

	// Navigation returns the sidebar routes.
	Navigation(ctx context.Context) ([]model.NavItem, error)
}

// dashboardService is a concrete implementation of DashboardService.
type dashboardService struct {
	docs    repository.DocumentRepository
	acts    repository.ActivityRepository
	dash    repository.DashboardRepository
	metrics *Metrics
}

// NewDashboardService constructs a new DashboardService. metrics may be nil.
func NewDashboardService(docs repository.DocumentRepository, acts repository.ActivityRepository, dash repository.DashboardRepository, metrics *Metrics) DashboardService {
	return &dashboardService{docs: docs, acts: acts, dash: dash, metrics: metrics}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	stats, err := s.dash.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	wf, err := s.dash.Workflow(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workflow: %w", err)
	}
	acts, err := s.acts.Activities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	cards := make([]StatCard, 0, len(stats))
	for _, st := range stats {
		style, err := presentation.StatVariantStyle(st.Variant)
		if err != nil {
			return nil, err
		}
		card := StatCard{Stat: st, Style: style}
		if st.Trend != nil {
			tv := presentation.Trend(*st.Trend)
			card.TrendView = &tv
		}
		cards = append(cards, card)
	}

	items, err := activityItems(acts)
	if err != nil {
		return nil, err
	}

	return &Overview{Stats: cards, Workflow: wf, Activities: items}, nil
}

func (s *dashboardService) Documents(ctx context.Context, q DocumentQuery) (*DocumentListResult, error) {
	status, err := filter.ParseStatus(q.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
	}

	docs, err := s.docs.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	counts, err := s.docs.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	v := view.NewDocuments(docs)
	v.SetSearchTerm(q.Term)
	v.SetStatus(status)

	visible := v.Visible()
	rows := make([]DocumentRow, 0, len(visible))
	for _, d := range visible {
		b, err := presentation.DocumentBadge(d.Status)
		if err != nil {
			return nil, err
		}
		rows = append(rows, DocumentRow{Document: d, Badge: b})
	}

	s.metrics.observeSearch(v.Status(), len(rows))

	return &DocumentListResult{
		Items:   rows,
		Total:   len(rows),
		Search:  v.SearchTerm(),
		Status:  v.Status().String(),
		Options: v.StatusOptions(counts),
	}, nil
}

func (s *dashboardService) Document(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindDocument(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *dashboardService) Activities(ctx context.Context, kind string) ([]ActivityItem, error) {
	var k model.ActivityKind
	if kind != "" {
		parsed, err := model.ParseActivityKind(kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
		}
		k = parsed
	}

	acts, err := s.acts.Activities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	return activityItems(filter.ApplyActivities(acts, k))
}

func (s *dashboardService) Navigation(ctx context.Context) ([]model.NavItem, error) {
	nav, err := s.dash.Navigation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}
	return nav, nil
}

func activityItems(acts []model.Activity) ([]ActivityItem, error) {
	items := make([]ActivityItem, 0, len(acts))
	for _, a := range acts {
		icon, err := presentation.ActivityKindIcon(a.Kind)
		if err != nil {
			return nil, err
		}
		item := ActivityItem{Activity: a, Icon: icon}
		b, ok, err := presentation.ActivityBadge(a.Status)
		if err != nil {
			return nil, err
		}
		if ok {
			item.Badge = &b
		}
		items = append(items, item)
	}
	return items, nil
}
