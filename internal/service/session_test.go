package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/backend/internal/model"
	"github.com/formsight/backend/internal/model/types"
	"github.com/formsight/backend/internal/pkg/fserr"
	"github.com/formsight/backend/internal/registry"
)

type fakeLive struct {
	mu      sync.Mutex
	scores  int
	reports int
}

func (f *fakeLive) PublishScore(string, *model.ScoreBreakdown) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores++
	return nil
}

func (f *fakeLive) PublishReport(string, *model.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports++
	return nil
}

type fakeArchive struct {
	mu      sync.Mutex
	reports map[string]*model.Report
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{reports: make(map[string]*model.Report)}
}

func (f *fakeArchive) Save(_ context.Context, report *model.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports[report.SessionID] = report
	return nil
}

func (f *fakeArchive) Load(_ context.Context, sessionID string) (*model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	report, ok := f.reports[sessionID]
	if !ok {
		return nil, ErrReportNotArchived
	}
	return report, nil
}

func newTestService(t *testing.T) (*Session, *fakeLive, *fakeArchive) {
	t.Helper()
	reg, err := registry.New()
	require.NoError(t, err)
	live := &fakeLive{}
	archive := newFakeArchive()
	return NewSession(reg, live, archive), live, archive
}

func TestSessionServiceLifecycle(t *testing.T) {
	svc, live, archive := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "badminton")
	require.NoError(t, err)
	assert.Len(t, created.SessionID, 20)
	assert.Equal(t, model.StateCreated, created.State)

	started, err := svc.Start(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateRunning, started.State)

	resp, err := svc.Ingest(ctx, created.SessionID, &types.IngestFrameRequest{Seq: 0, Timestamp: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.FrameCount)
	assert.Equal(t, 1, live.scores)

	report, err := svc.Stop(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, report.SessionID)
	assert.Equal(t, 1, live.reports)
	assert.Contains(t, archive.reports, created.SessionID)

	// idempotent stop neither re-archives nor re-publishes
	again, err := svc.Stop(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, report, again)
	assert.Equal(t, 1, live.reports)
}

func TestSessionServiceUnsupportedSport(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "chess")
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeUnsupportedSport, fe.ErrorCode)
}

func TestSessionServiceUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, "does-not-exist")
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeNotFound, fe.ErrorCode)
}

func TestSessionServiceInvalidState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "yoga")
	require.NoError(t, err)

	// frames before start are rejected with a state conflict
	_, err = svc.Ingest(ctx, created.SessionID, &types.IngestFrameRequest{})
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeInvalidState, fe.ErrorCode)
}

func TestSessionServiceReportFromArchive(t *testing.T) {
	svc, _, archive := newTestService(t)
	ctx := context.Background()

	archived := &model.Report{SessionID: "evicted-session", Sport: model.SportTennis}
	require.NoError(t, archive.Save(ctx, archived))

	report, err := svc.GetReport(ctx, "evicted-session")
	require.NoError(t, err)
	assert.Equal(t, archived, report)

	_, err = svc.GetReport(ctx, "never-existed")
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeNotFound, fe.ErrorCode)
}

func TestSessionServiceReportIsReadOnly(t *testing.T) {
	svc, live, archive := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "badminton")
	require.NoError(t, err)
	_, err = svc.Start(ctx, created.SessionID)
	require.NoError(t, err)
	_, err = svc.Ingest(ctx, created.SessionID, &types.IngestFrameRequest{Seq: 0, Timestamp: 0})
	require.NoError(t, err)

	// fetching the report of a running session is a state conflict and
	// must not end the session
	_, err = svc.GetReport(ctx, created.SessionID)
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeInvalidState, fe.ErrorCode)
	assert.NotContains(t, archive.reports, created.SessionID)
	assert.Equal(t, 0, live.reports)

	stats, err := svc.Stats(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StateRunning, stats.State)

	_, err = svc.Ingest(ctx, created.SessionID, &types.IngestFrameRequest{Seq: 1, Timestamp: 0.1})
	require.NoError(t, err)

	report, err := svc.Stop(ctx, created.SessionID)
	require.NoError(t, err)

	// once stopped, retrieval serves the cached report without
	// re-archiving or re-publishing
	got, err := svc.GetReport(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Same(t, report, got)
	assert.Equal(t, 1, live.reports)
}

func TestSessionServiceListSports(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp := svc.ListSports(context.Background())
	require.Len(t, resp.Sports, 6)
	for _, entry := range resp.Sports {
		assert.NotEmpty(t, entry.Name)
		assert.NotZero(t, entry.JointCount)
	}
}

func TestSessionServiceReapIdle(t *testing.T) {
	svc, _, archive := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "running")
	require.NoError(t, err)
	_, err = svc.Start(ctx, created.SessionID)
	require.NoError(t, err)

	// a zero TTL treats every session as idle
	reaped := svc.ReapIdle(ctx, 0)
	assert.Equal(t, 1, reaped)

	// the reaped running session was finalized into the archive
	assert.Contains(t, archive.reports, created.SessionID)

	_, err = svc.Stats(ctx, created.SessionID)
	var fe *fserr.FormSightError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fserr.CodeNotFound, fe.ErrorCode)
}
