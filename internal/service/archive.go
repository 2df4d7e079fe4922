package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
)

// ErrReportNotArchived is returned when no archived report exists for a
// session ID.
var ErrReportNotArchived = errors.New("no archived report for session")

// Archive stores final reports in Redis under a per-session key with a
// fixed TTL, surviving process restarts and session eviction.
type Archive struct {
	redis *redis.Client
}

func NewArchive(client *redis.Client) ReportArchive {
	return &Archive{redis: client}
}

func (a *Archive) Save(ctx context.Context, report *model.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "service: archive: failed to marshal report")
	}
	key := constant.ReportArchiveKeyPrefix + report.SessionID
	if err := a.redis.Set(ctx, key, body, constant.ReportArchiveTTL).Err(); err != nil {
		return errors.Wrapf(err, "service: archive: failed to save report %s", report.SessionID)
	}
	return nil
}

func (a *Archive) Load(ctx context.Context, sessionID string) (*model.Report, error) {
	key := constant.ReportArchiveKeyPrefix + sessionID
	body, err := a.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(ErrReportNotArchived, sessionID)
		}
		return nil, errors.Wrapf(err, "service: archive: failed to load report %s", sessionID)
	}

	var report model.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, errors.Wrapf(err, "service: archive: failed to unmarshal report %s", sessionID)
	}
	return &report, nil
}
