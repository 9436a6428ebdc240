// Package topics implements the topic operations exposed for registered clusters
package topics

import (
	"context"
	"errors"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
	"github.com/agile-developer/kafka-proxy/internal/registry"
)

const (
	createPartitions        = 1
	createReplicationFactor = 1
)

var (
	metricsNamespace = "kafka_proxy"

	topicListError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "topic_list_error_total",
		Namespace: metricsNamespace,
		Help:      "Total number of errors while listing topics",
	}, []string{"cluster"})

	describeTopicError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "topic_describe_error_total",
		Namespace: metricsNamespace,
		Help:      "Total number of errors while describing topics",
	}, []string{"cluster"})

	topicCreationFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "topic_creation_failed_total",
		Namespace: metricsNamespace,
		Help:      "Total number of errors while creating topics",
	}, []string{"cluster"})
)

// TopicState is the outcome of a topic lookup
type TopicState int

const (
	// TopicUnknown means the lookup could not be answered
	TopicUnknown TopicState = iota
	TopicAbsent
	TopicExists
)

func (s TopicState) String() string {
	switch s {
	case TopicAbsent:
		return "absent"
	case TopicExists:
		return "exists"
	default:
		return "unknown"
	}
}

// ConnectionProvider looks up registered cluster connections
type ConnectionProvider interface {
	GetConnection(address string) (registry.Entry, bool)
}

var _ ConnectionProvider = (*registry.Registry)(nil)

// RecordSampler reads a one-shot sample of a topic
type RecordSampler interface {
	Sample(ctx context.Context, address string, topic string) ([]string, error)
}

type Service struct {
	connections ConnectionProvider
	sampler     RecordSampler
	config      proxy.Config
	logger      *zerolog.Logger
}

func NewService(connections ConnectionProvider, sampler RecordSampler, config proxy.Config, logger *zerolog.Logger) *Service {
	l := logger.With().Str("proxyService", "topic").Logger()
	return &Service{
		connections: connections,
		sampler:     sampler,
		config:      config.WithDefaults(),
		logger:      &l,
	}
}

// TopicID returns the identifier reported for a topic of a cluster
func TopicID(clusterID string, topic string) string {
	return clusterID + "/" + topic
}

func (s *Service) entry(address string) (registry.Entry, error) {
	entry, ok := s.connections.GetConnection(address)
	if !ok {
		return registry.Entry{}, registry.NoActiveConnection(address)
	}
	return entry, nil
}

// ListForCluster returns every non-internal topic of the cluster with its
// partitions, ordered by topic name whatever order the Admin reports them
// in. A cluster without such topics yields ErrNoTopics.
func (s *Service) ListForCluster(ctx context.Context, address string) ([]client.TopicInfo, error) {
	entry, err := s.entry(address)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.OperationTimeout)
	defer cancel()

	names, err := entry.Admin.ListTopics(ctx, false)
	if err != nil {
		topicListError.WithLabelValues(address).Inc()
		s.logger.Error().Err(err).Str("cluster", address).Msg("Error listing topics")
		return nil, &OperationError{Op: OpList, Address: address, Err: err}
	}

	if len(names) == 0 {
		s.logger.Info().Str("cluster", address).Msg("No topics found")
		return nil, noTopics(address)
	}

	topics, err := entry.Admin.DescribeTopics(ctx, names)
	if err != nil {
		describeTopicError.WithLabelValues(address).Inc()
		s.logger.Error().Err(err).Str("cluster", address).Msg("Error describing topics")
		return nil, &OperationError{Op: OpDescribe, Address: address, Err: err}
	}

	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})

	s.logger.Info().Str("cluster", address).Int("topics", len(topics)).Msg("Listed topics")

	return topics, nil
}

// LookupTopic reports whether the cluster has a non-internal topic called
// name. When that can not be determined it returns TopicUnknown and the
// reason.
func (s *Service) LookupTopic(ctx context.Context, address string, name string) (TopicState, error) {
	entry, err := s.entry(address)
	if err != nil {
		return TopicUnknown, err
	}
	return s.lookup(ctx, entry, address, name)
}

func (s *Service) lookup(ctx context.Context, entry registry.Entry, address string, name string) (TopicState, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.OperationTimeout)
	defer cancel()

	names, err := entry.Admin.ListTopics(ctx, false)
	if err != nil {
		topicListError.WithLabelValues(address).Inc()
		s.logger.Error().Err(err).Str("cluster", address).Str("topic", name).Msg("Error listing topics")
		return TopicUnknown, &OperationError{Op: OpList, Address: address, Topic: name, Err: err}
	}

	for _, n := range names {
		if n == name {
			return TopicExists, nil
		}
	}
	return TopicAbsent, nil
}

// IsValidTopic reports whether the cluster has a connection and a
// non-internal topic called name
func (s *Service) IsValidTopic(ctx context.Context, address string, name string) bool {
	state, err := s.LookupTopic(ctx, address, name)
	return err == nil && state == TopicExists
}

// CreateTopic creates a single partition, single replica topic and returns
// its identifier. It fails if the topic already exists.
func (s *Service) CreateTopic(ctx context.Context, address string, name string) (string, error) {
	entry, err := s.entry(address)
	if err != nil {
		return "", err
	}
	return s.create(ctx, entry, address, name)
}

func (s *Service) create(ctx context.Context, entry registry.Entry, address string, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.OperationTimeout)
	defer cancel()

	if err := entry.Admin.CreateTopic(ctx, name, createPartitions, createReplicationFactor); err != nil {
		topicCreationFailed.WithLabelValues(address).Inc()
		s.logger.Error().Err(err).Str("cluster", address).Str("topic", name).Msg("Error creating topic")
		return "", &OperationError{Op: OpCreate, Address: address, Topic: name, Err: err}
	}

	id := TopicID(entry.Connection.ClusterID, name)
	s.logger.Info().Str("cluster", address).Str("topic", name).Str("topicId", id).Msg("Created topic")

	return id, nil
}

// EnsureTopic creates the topic unless it already exists. It returns the
// topic identifier and whether this call created it.
func (s *Service) EnsureTopic(ctx context.Context, address string, name string) (string, bool, error) {
	entry, err := s.entry(address)
	if err != nil {
		return "", false, err
	}

	state, err := s.lookup(ctx, entry, address, name)
	if err != nil {
		return "", false, err
	}
	if state == TopicExists {
		s.logger.Info().Str("cluster", address).Str("topic", name).Msg("Topic already exists")
		return TopicID(entry.Connection.ClusterID, name), false, nil
	}

	id, err := s.create(ctx, entry, address, name)
	if err != nil {
		// Lost a race with another creator
		if errors.Is(err, kafka.TopicAlreadyExists) {
			return TopicID(entry.Connection.ClusterID, name), false, nil
		}
		return "", false, err
	}

	return id, true, nil
}

// ConsumeRecords returns the values of a one-shot sample of topic. The
// sample uses its own consumer, not the registered connection.
func (s *Service) ConsumeRecords(ctx context.Context, address string, topic string) ([]string, error) {
	values, err := s.sampler.Sample(ctx, address, topic)
	if err != nil {
		return nil, &OperationError{Op: OpConsume, Address: address, Topic: topic, Err: err}
	}

	return values, nil
}
