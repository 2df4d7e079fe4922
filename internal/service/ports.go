package service

import (
	"context"

	"github.com/formsight/backend/internal/model"
)

// LivePublisher pushes per-frame breakdowns and final reports to live
// subscribers. Publishing is best-effort: a failed publish never fails
// the originating request.
type LivePublisher interface {
	PublishScore(sessionID string, breakdown *model.ScoreBreakdown) error
	PublishReport(sessionID string, report *model.Report) error
}

// ReportArchive persists final session reports beyond the lifetime of
// the in-memory session.
type ReportArchive interface {
	Save(ctx context.Context, report *model.Report) error
	Load(ctx context.Context, sessionID string) (*model.Report, error)
}
