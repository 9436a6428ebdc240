// Package sampler reads a one-shot sample of a topic with a throwaway consumer
package sampler

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/agile-developer/kafka-proxy/internal/client"
)

// PollTimeout bounds the single poll of a sample
const PollTimeout = time.Second

var (
	metricsNamespace = "kafka_proxy"

	recordsSampled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "records_sampled_total",
		Namespace: metricsNamespace,
		Help:      "Total number of records returned by topic samples",
	}, []string{"cluster"})

	sampleError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "sample_error_total",
		Namespace: metricsNamespace,
		Help:      "Total number of failed topic samples",
	}, []string{"cluster"})
)

type Sampler struct {
	newConsumer client.ConsumerFactory
	pollTimeout time.Duration
	logger      *zerolog.Logger
}

func New(newConsumer client.ConsumerFactory, logger *zerolog.Logger) *Sampler {
	l := logger.With().Str("proxyService", "sampler").Logger()
	return &Sampler{
		newConsumer: newConsumer,
		pollTimeout: PollTimeout,
		logger:      &l,
	}
}

// Sample opens a consumer for address, assigns every partition of topic from
// the earliest offset and returns the record values of one poll. The
// consumer is closed before Sample returns, whatever the outcome. An empty
// or unreachable-within-the-poll topic yields an empty, non-nil slice.
func (s *Sampler) Sample(ctx context.Context, address string, topic string) ([]string, error) {
	values, err := s.sample(ctx, address, topic)
	if err != nil {
		sampleError.WithLabelValues(address).Inc()
		s.logger.Error().Err(err).Str("cluster", address).Str("topic", topic).Msg("Sample failed")
		return nil, err
	}

	recordsSampled.WithLabelValues(address).Add(float64(len(values)))
	event := s.logger.Info()
	if len(values) == 0 {
		event = s.logger.Debug()
	}
	event.Str("cluster", address).Str("topic", topic).Int("records", len(values)).Msg("Sampled topic")

	return values, nil
}

func (s *Sampler) sample(ctx context.Context, address string, topic string) ([]string, error) {
	consumer, err := s.newConsumer(address)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := consumer.Close(); cerr != nil {
			s.logger.Warn().Err(cerr).Str("cluster", address).Msg("Error closing sample consumer")
		}
	}()

	partitions, err := consumer.Partitions(ctx, topic)
	if err != nil {
		return nil, err
	}

	pollCtx, cancel := context.WithTimeout(ctx, s.pollTimeout)
	defer cancel()

	messages, err := consumer.Poll(pollCtx, topic, partitions)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(messages))
	for _, m := range messages {
		values = append(values, string(m.Value))
	}

	return values, nil
}
