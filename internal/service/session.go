package service

import (
	"context"
	"sync"
	"time"

	"github.com/dchest/uniuri"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/engine"
	"github.com/formsight/backend/internal/model"
	"github.com/formsight/backend/internal/model/types"
	"github.com/formsight/backend/internal/pkg/fserr"
	"github.com/formsight/backend/internal/pkg/observability"
	"github.com/formsight/backend/internal/registry"
)

// Session owns the in-memory session table and orchestrates the engine:
// ID allocation, lifecycle calls, live publishing and report archival.
type Session struct {
	registry *registry.Registry
	live     LivePublisher
	archive  ReportArchive

	mu       sync.RWMutex
	sessions map[string]*engine.Session
}

func NewSession(reg *registry.Registry, live LivePublisher, archive ReportArchive) *Session {
	return &Session{
		registry: reg,
		live:     live,
		archive:  archive,
		sessions: make(map[string]*engine.Session),
	}
}

// Create allocates a session in the CREATED state for the given sport.
func (s *Session) Create(ctx context.Context, sportID string) (*types.CreateSessionResponse, error) {
	prof, err := s.registry.Get(model.Sport(sportID))
	if err != nil {
		return nil, fserr.ErrUnsupportedSport.Msg("unsupported sport: %s", sportID)
	}

	sess := engine.NewSession(uniuri.NewLen(constant.SessionIDLength), prof)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()
	observability.SessionsActive.Inc()

	log.Ctx(ctx).Info().
		Str("evt.name", "session.created").
		Str("session_id", sess.ID()).
		Str("sport", sportID).
		Msg("session created")

	return &types.CreateSessionResponse{
		SessionID: sess.ID(),
		Sport:     sess.Sport(),
		State:     sess.State(),
	}, nil
}

// Start transitions a session into RUNNING.
func (s *Session) Start(ctx context.Context, sessionID string) (*types.SessionStateResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Start(); err != nil {
		return nil, mapEngineError(err)
	}
	return &types.SessionStateResponse{
		SessionID: sess.ID(),
		State:     sess.State(),
	}, nil
}

// Ingest scores one frame, publishes the breakdown to live subscribers
// and returns it together with refreshed running stats.
func (s *Session) Ingest(ctx context.Context, sessionID string, req *types.IngestFrameRequest) (*types.IngestFrameResponse, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	breakdown, err := sess.Ingest(req.Frame())
	if err != nil {
		return nil, mapEngineError(err)
	}
	observability.FrameScoreDuration.
		WithLabelValues(string(sess.Sport())).
		Observe(time.Since(start).Seconds())

	if err := s.live.PublishScore(sess.ID(), breakdown); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("session_id", sess.ID()).
			Msg("failed to publish live score")
	}

	stats, err := sess.Stats()
	if err != nil {
		return nil, mapEngineError(err)
	}

	return &types.IngestFrameResponse{
		Breakdown: breakdown,
		Stats:     stats,
	}, nil
}

// Stop finalizes a session, archives the report and publishes it. The
// call is idempotent: repeated stops return the same report.
func (s *Session) Stop(ctx context.Context, sessionID string) (*model.Report, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	alreadyReported := sess.State() == model.StateReported
	report, err := sess.Stop()
	if err != nil {
		return nil, mapEngineError(err)
	}
	if alreadyReported {
		return report, nil
	}

	observability.ReportsGenerated.
		WithLabelValues(string(report.Sport), string(report.Level)).
		Inc()

	if err := s.archive.Save(ctx, report); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("session_id", sess.ID()).
			Msg("failed to archive report")
	}
	if err := s.live.PublishReport(sess.ID(), report); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("session_id", sess.ID()).
			Msg("failed to publish report")
	}

	log.Ctx(ctx).Info().
		Str("evt.name", "session.reported").
		Str("session_id", sess.ID()).
		Float64("composite", report.Composite).
		Str("level", string(report.Level)).
		Msg("session report generated")

	return report, nil
}

// Stats returns the running stats of a live session.
func (s *Session) Stats(ctx context.Context, sessionID string) (*model.SessionStats, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	stats, err := sess.Stats()
	if err != nil {
		return nil, mapEngineError(err)
	}
	return stats, nil
}

// GetReport returns the final report of a session, falling back to the
// archive for sessions already evicted from memory. Read-only: a resident
// session that has not been stopped yet is left untouched and the call
// fails with a state conflict.
func (s *Session) GetReport(ctx context.Context, sessionID string) (*model.Report, error) {
	sess, err := s.get(sessionID)
	if err == nil {
		if sess.State() != model.StateReported {
			return nil, fserr.ErrInvalidState.Msg("no report yet: session %s is in state %q", sessionID, sess.State())
		}
		// Stop on a reported session returns the cached report
		report, err := sess.Stop()
		if err != nil {
			return nil, mapEngineError(err)
		}
		return report, nil
	}

	report, err := s.archive.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrReportNotArchived) {
			return nil, fserr.ErrNotFound.Msg("no report for session %s", sessionID)
		}
		return nil, err
	}
	return report, nil
}

// ListSports enumerates the supported sports.
func (s *Session) ListSports(ctx context.Context) *types.SportListResponse {
	entries := lo.Map(s.registry.List(), func(prof *model.SportProfile, _ int) types.SportListEntry {
		return types.SportListEntry{
			ID:         prof.Sport,
			Name:       prof.DisplayName,
			Cyclic:     prof.CadencePeriod > 0,
			JointCount: len(prof.Joints),
		}
	})
	return &types.SportListResponse{Sports: entries}
}

// ReapIdle evicts sessions whose last activity is older than ttl.
// Running sessions are stopped and archived before eviction so their
// report stays retrievable.
func (s *Session) ReapIdle(ctx context.Context, ttl time.Duration) int {
	cutoff := time.Now().UTC().Add(-ttl)

	s.mu.Lock()
	stale := make([]*engine.Session, 0)
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		if sess.State() == model.StateRunning {
			report, err := sess.Stop()
			if err != nil {
				log.Ctx(ctx).Error().Err(err).
					Str("session_id", sess.ID()).
					Msg("failed to finalize reaped session")
			} else if err := s.archive.Save(ctx, report); err != nil {
				log.Ctx(ctx).Error().Err(err).
					Str("session_id", sess.ID()).
					Msg("failed to archive reaped report")
			}
		}
		observability.SessionsActive.Dec()
		observability.SessionsReaped.Inc()
		log.Ctx(ctx).Info().
			Str("evt.name", "session.reaped").
			Str("session_id", sess.ID()).
			Str("state", string(sess.State())).
			Msg("idle session evicted")
	}

	return len(stale)
}

func (s *Session) get(sessionID string) (*engine.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fserr.ErrNotFound.Msg("no session with id %s", sessionID)
	}
	return sess, nil
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidState):
		return fserr.ErrInvalidState.Msg("%s", err)
	case errors.Is(err, engine.ErrUnsupportedSport):
		return fserr.ErrUnsupportedSport.Msg("%s", err)
	}
	return err
}
