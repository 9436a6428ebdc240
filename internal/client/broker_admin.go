package client

import (
	"context"
	"errors"
	"sort"

	"github.com/segmentio/kafka-go"
)

// ErrNoClusterID is returned when the brokers do not report a cluster id
var ErrNoClusterID = errors.New("cluster id not reported by brokers")

// A Kafka admin client bound to the brokers of one cluster
//
//go:generate mockery --name Admin --with-expecter --output ../mocks
type Admin interface {
	ClusterID(ctx context.Context) (string, error)
	ListTopics(ctx context.Context, includeInternal bool) ([]string, error)
	DescribeTopics(ctx context.Context, names []string) ([]TopicInfo, error)
	CreateTopic(ctx context.Context, name string, partitions int, replicationFactor int) error
	Close() error
}

// AdminFactory opens an Admin against a bootstrap server string
type AdminFactory func(bootstrapServer string) (Admin, error)

var _ Admin = (*BrokerAdmin)(nil)

type BrokerAdmin struct {
	client    KafkaAdminClient
	transport idleCloser
}

func NewBrokerAdmin(config ConnectorConfig) (*BrokerAdmin, error) {
	connector, err := NewConnector(config)
	if err != nil {
		return nil, err
	}

	return &BrokerAdmin{
		client:    connector.KafkaClient,
		transport: connector.Transport,
	}, nil
}

// NewBrokerAdminFactory returns an AdminFactory sharing the TLS, SASL and
// client settings of config
func NewBrokerAdminFactory(config ConnectorConfig) AdminFactory {
	return func(bootstrapServer string) (Admin, error) {
		addrs, err := ParseBootstrapServers(bootstrapServer)
		if err != nil {
			return nil, err
		}
		cfg := config
		cfg.BrokerAddrs = addrs
		admin, err := NewBrokerAdmin(cfg)
		if err != nil {
			return nil, err
		}
		return admin, nil
	}
}

// ClusterID returns the identifier the cluster reports for itself
func (c *BrokerAdmin) ClusterID(ctx context.Context) (string, error) {
	// An empty, non-nil topic list asks for broker metadata only
	resp, err := c.client.Metadata(ctx, &kafka.MetadataRequest{
		Topics: []string{},
	})
	if err != nil {
		return "", err
	}
	if resp.ClusterID == "" {
		return "", ErrNoClusterID
	}
	return resp.ClusterID, nil
}

// ListTopics returns the names of the topics in the cluster
func (c *BrokerAdmin) ListTopics(ctx context.Context, includeInternal bool) ([]string, error) {
	resp, err := c.client.Metadata(ctx, &kafka.MetadataRequest{})
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, t := range resp.Topics {
		if t.Internal && !includeInternal {
			continue
		}
		names = append(names, t.Name)
	}
	sort.Strings(names)

	return names, nil
}

// DescribeTopics returns the partition layout of each named topic, in the
// order requested. It fails if any one of the topics can not be described.
func (c *BrokerAdmin) DescribeTopics(ctx context.Context, names []string) ([]TopicInfo, error) {
	resp, err := c.client.Metadata(ctx, &kafka.MetadataRequest{
		Topics: names,
	})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]kafka.Topic, len(resp.Topics))
	for _, t := range resp.Topics {
		byName[t.Name] = t
	}

	kerrs := map[string]error{}
	topics := make([]TopicInfo, 0, len(names))
	for _, name := range names {
		topic, ok := byName[name]
		if !ok {
			kerrs[name] = kafka.UnknownTopicOrPartition
			continue
		}
		if topic.Error != nil {
			kerrs[name] = topic.Error
			continue
		}

		info := TopicInfo{Name: topic.Name, Partitions: []PartitionInfo{}}
		for _, p := range topic.Partitions {
			info.Partitions = append(info.Partitions, PartitionInfo{ID: p.ID})
		}
		sort.Slice(info.Partitions, func(i, j int) bool {
			return info.Partitions[i].ID < info.Partitions[j].ID
		})
		topics = append(topics, info)
	}

	if err = KafkaErrorsToErr(kerrs); err != nil {
		return nil, err
	}

	return topics, nil
}

// CreateTopic creates a topic with the given name, partition count and replication factor
func (c *BrokerAdmin) CreateTopic(ctx context.Context, name string, partitions int, replicationFactor int) error {
	resp, err := c.client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{
			Topic:             name,
			NumPartitions:     partitions,
			ReplicationFactor: replicationFactor,
		}},
	})
	if err != nil {
		return err
	}

	if err = KafkaErrorsToErr(resp.Errors); err != nil {
		return err
	}

	return nil
}

// Close releases the broker connections held by the admin
func (c *BrokerAdmin) Close() error {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return nil
}
