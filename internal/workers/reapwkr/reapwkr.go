package reapwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/formsight/backend/internal/app/appconfig"
	"github.com/formsight/backend/internal/service"
)

// Worker periodically evicts idle sessions so abandoned clients do not
// pin memory forever. A reaped running session is finalized and its
// report archived, so a late GET report still succeeds.
type Worker struct {
	// interval is the time in-between reap sweeps
	interval time.Duration

	// ttl is the idle duration after which a session is evicted
	ttl time.Duration

	sessionService *service.Session
}

func Start(conf *appconfig.Config, sessionService *service.Session) {
	(&Worker{
		interval:       conf.ReaperInterval,
		ttl:            conf.SessionTTL,
		sessionService: sessionService,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		t := time.NewTicker(w.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}

			reaped := w.sessionService.ReapIdle(ctx, w.ttl)
			if reaped > 0 {
				log.Info().
					Str("evt.name", "reaper.swept").
					Int("reaped", reaped).
					Msg("reaper evicted idle sessions")
			}
		}
	}()

	return cancel
}
