package service

import (
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
)

// Live publishes scoring output over NATS, one subject per session, so
// live clients can subscribe to just the session they are watching.
type Live struct {
	nats *nats.Conn
}

func NewLive(nc *nats.Conn) LivePublisher {
	return &Live{nats: nc}
}

func (l *Live) PublishScore(sessionID string, breakdown *model.ScoreBreakdown) error {
	return l.publish(constant.LiveSubjectPrefix+sessionID, breakdown)
}

func (l *Live) PublishReport(sessionID string, report *model.Report) error {
	return l.publish(constant.ReportSubjectPrefix+sessionID, report)
}

func (l *Live) publish(subject string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "service: live: failed to marshal payload")
	}
	if err := l.nats.Publish(subject, body); err != nil {
		return errors.Wrapf(err, "service: live: failed to publish to %s", subject)
	}
	return nil
}
