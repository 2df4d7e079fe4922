package infra

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/formsight/backend/internal/app/appconfig"
)

func NATS(conf *appconfig.Config) (*nats.Conn, error) {
	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		l := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			l = l.Str("sub.subject", sub.Subject)
		}
		l.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	return nc, nil
}
