package handler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	apiSubmissions       prometheus.Counter
	apiBroadcastFailures prometheus.Counter
}

func NewStats() (*Stats, error) {
	s := &Stats{
		apiSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "algosender_api_submitted_txs",
			Help: "Nr of payments broadcast successfully",
		}),
		apiBroadcastFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "algosender_api_broadcast_failures",
			Help: "Nr of payments that could not be broadcast",
		}),
	}

	err := registerStats(
		s.apiSubmissions,
		s.apiBroadcastFailures,
	)
	if err != nil {
		return nil, errors.Join(ErrFailedToRegisterStats, err)
	}

	return s, nil
}

func (s *Stats) AddSubmission() {
	s.apiSubmissions.Inc()
}

func (s *Stats) AddBroadcastFailure() {
	s.apiBroadcastFailures.Inc()
}

func (s *Stats) UnregisterStats() {
	unregisterStats(
		s.apiSubmissions,
		s.apiBroadcastFailures,
	)
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return err
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
