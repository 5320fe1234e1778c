// Package ircmetrics counts what a session sees and sends as Prometheus
// metrics.
package ircmetrics

import (
	"errors"
	"net/http"

	irc "github.com/gissleh/ircsession"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// A Collector is a session handler that keeps metrics on the session. Add it
// as both a handler and a send filter:
//
//	collector := ircmetrics.New(registry, session)
//	session.AddHandler(collector)
//	session.AddSendFilter(collector.Filter)
type Collector struct {
	session *irc.Session

	events        *prometheus.CounterVec
	parseFailures prometheus.Counter
	sentLines     *prometheus.CounterVec
	channels      prometheus.Gauge
}

// New creates a collector and registers its metrics with the registerer.
func New(registerer prometheus.Registerer, session *irc.Session) *Collector {
	factory := promauto.With(registerer)
	labels := prometheus.Labels{"session": session.ID()}

	return &Collector{
		session: session,

		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "irc_events_total",
			Help:        "Events emitted by the session, by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
		parseFailures: factory.NewCounter(prometheus.CounterOpts{
			Name:        "irc_parse_failures_total",
			Help:        "Received lines that could not be parsed",
			ConstLabels: labels,
		}),
		sentLines: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "irc_sent_lines_total",
			Help:        "Lines that passed the send filters before this one, by command",
			ConstLabels: labels,
		}, []string{"command"}),
		channels: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "irc_channels",
			Help:        "Channels the session is in",
			ConstLabels: labels,
		}),
	}
}

// HandleEvent implements irc.Handler. It never stops an event.
func (collector *Collector) HandleEvent(event irc.Event) bool {
	collector.events.WithLabelValues(event.Kind.String()).Inc()

	switch event.Kind {
	case irc.EventJoin, irc.EventPart, irc.EventKick, irc.EventConnect, irc.EventDisconnect:
		collector.channels.Set(float64(collector.session.Store().Len()))
	}

	return false
}

// Filter is a send filter that counts outgoing lines. It never refuses one.
func (collector *Collector) Filter(msg *irc.Message) error {
	collector.sentLines.WithLabelValues(msg.Command.String()).Inc()
	return nil
}

// HandleLine passes the line on to the session, counting parse failures.
func (collector *Collector) HandleLine(line string) error {
	err := collector.session.HandleLine(line)
	if errors.Is(err, irc.ErrMalformedMessage) || errors.Is(err, irc.ErrUnknownCommand) || errors.Is(err, irc.ErrTruncated) {
		collector.parseFailures.Inc()
	}

	return err
}

// Handler serves the gatherer's metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
