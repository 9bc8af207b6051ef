package alertview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bullseye-app/bullseye/internal/analysis"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=alertview
type Repository interface {
	UpsertView(ctx context.Context, view *View) error
	ListViews(ctx context.Context, memberID uuid.UUID) ([]*View, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MarkViewed records that the member has seen the alert. Marking the same
// alert twice keeps the first viewed-at timestamp.
func (s *Service) MarkViewed(ctx context.Context, memberID uuid.UUID, alertID string) error {
	if alertID == "" {
		return fmt.Errorf("alert id must not be empty")
	}

	return s.repo.UpsertView(ctx, &View{MemberID: memberID, AlertID: alertID})
}

func (s *Service) ListViewed(ctx context.Context, memberID uuid.UUID) ([]*View, error) {
	return s.repo.ListViews(ctx, memberID)
}

// Annotate returns the subset of alerts the member has not viewed yet,
// plus the full input with Acknowledged set on the viewed ones. The input
// slice is not modified.
func (s *Service) Annotate(ctx context.Context, memberID uuid.UUID, alerts []analysis.Alert) (annotated, fresh []analysis.Alert, err error) {
	views, err := s.repo.ListViews(ctx, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing viewed alerts: %w", err)
	}

	annotated, fresh = FilterNew(alerts, views)

	return annotated, fresh, nil
}

// FilterNew splits alerts into an annotated copy and the not-yet-viewed
// subset, preserving input order.
func FilterNew(alerts []analysis.Alert, views []*View) (annotated, fresh []analysis.Alert) {
	viewed := make(map[string]struct{}, len(views))
	for _, v := range views {
		viewed[v.AlertID] = struct{}{}
	}

	annotated = make([]analysis.Alert, 0, len(alerts))

	for _, a := range alerts {
		if _, ok := viewed[a.ID]; ok {
			a.Acknowledged = true
		} else {
			fresh = append(fresh, a)
		}

		annotated = append(annotated, a)
	}

	return annotated, fresh
}
