package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultFetchMaxBytes = 1 << 20
	defaultFetchMaxWait  = 500 * time.Millisecond
)

// A consumer reading explicitly assigned partitions from the earliest offset,
// with no consumer group and nothing committed
//
//go:generate mockery --name Consumer --with-expecter --output ../mocks
type Consumer interface {
	Partitions(ctx context.Context, topic string) ([]int, error)
	Poll(ctx context.Context, topic string, partitions []int) ([]Message, error)
	Close() error
}

// ConsumerFactory opens a Consumer against a bootstrap server string
type ConsumerFactory func(bootstrapServer string) (Consumer, error)

// ConsumerConfig bounds a single poll
type ConsumerConfig struct {
	// MaxBytes caps the bytes fetched per partition
	MaxBytes int
	// MaxWait is how long the broker may hold a fetch waiting for data
	MaxWait time.Duration
}

var _ Consumer = (*PartitionConsumer)(nil)

type PartitionConsumer struct {
	client    KafkaFetchClient
	transport idleCloser
	maxBytes  int64
	maxWait   time.Duration
}

func NewPartitionConsumer(config ConnectorConfig, consumerConfig ConsumerConfig) (*PartitionConsumer, error) {
	connector, err := NewConnector(config)
	if err != nil {
		return nil, err
	}

	c := &PartitionConsumer{
		client:    connector.KafkaClient,
		transport: connector.Transport,
		maxBytes:  int64(consumerConfig.MaxBytes),
		maxWait:   consumerConfig.MaxWait,
	}
	if c.maxBytes <= 0 {
		c.maxBytes = defaultFetchMaxBytes
	}
	if c.maxWait <= 0 {
		c.maxWait = defaultFetchMaxWait
	}

	return c, nil
}

// NewPartitionConsumerFactory returns a ConsumerFactory sharing the TLS, SASL
// and client settings of config
func NewPartitionConsumerFactory(config ConnectorConfig, consumerConfig ConsumerConfig) ConsumerFactory {
	return func(bootstrapServer string) (Consumer, error) {
		addrs, err := ParseBootstrapServers(bootstrapServer)
		if err != nil {
			return nil, err
		}
		cfg := config
		cfg.BrokerAddrs = addrs
		consumer, err := NewPartitionConsumer(cfg, consumerConfig)
		if err != nil {
			return nil, err
		}
		return consumer, nil
	}
}

// Partitions returns the partition ids of topic in ascending order
func (c *PartitionConsumer) Partitions(ctx context.Context, topic string) ([]int, error) {
	resp, err := c.client.Metadata(ctx, &kafka.MetadataRequest{
		Topics: []string{topic},
	})
	if err != nil {
		return nil, err
	}

	if topicCount := len(resp.Topics); topicCount != 1 {
		return nil, fmt.Errorf("unexpected topic count: %d", topicCount)
	}

	t := resp.Topics[0]
	if t.Error != nil {
		return nil, t.Error
	}

	partitions := make([]int, 0, len(t.Partitions))
	for _, p := range t.Partitions {
		partitions = append(partitions, p.ID)
	}
	sort.Ints(partitions)

	return partitions, nil
}

type partitionRecords struct {
	partition int
	messages  []Message
}

// Poll performs one fetch per partition starting at the earliest offset.
// Fetches run concurrently and are bounded by ctx; a partition whose fetch
// runs into the ctx deadline contributes no records. Messages are returned
// partition ascending, in offset order within each partition.
func (c *PartitionConsumer) Poll(ctx context.Context, topic string, partitions []int) ([]Message, error) {
	p := pool.NewWithResults[partitionRecords]().WithContext(ctx)
	for _, partition := range partitions {
		partition := partition
		p.Go(func(ctx context.Context) (partitionRecords, error) {
			messages, err := c.fetch(ctx, topic, partition)
			return partitionRecords{partition: partition, messages: messages}, err
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].partition < results[j].partition
	})

	messages := []Message{}
	for _, r := range results {
		messages = append(messages, r.messages...)
	}

	return messages, nil
}

func (c *PartitionConsumer) fetch(ctx context.Context, topic string, partition int) ([]Message, error) {
	resp, err := c.client.Fetch(ctx, &kafka.FetchRequest{
		Topic:     topic,
		Partition: partition,
		Offset:    kafka.FirstOffset,
		MinBytes:  1,
		MaxBytes:  c.maxBytes,
		MaxWait:   c.maxWait,
	})
	if err != nil {
		if isDeadline(err) {
			return nil, nil
		}
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("partition(%d) error: %w", partition, resp.Error)
	}
	if resp.Records == nil {
		return nil, nil
	}

	var messages []Message
	for {
		record, err := resp.Records.ReadRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("partition(%d) read error: %w", partition, err)
		}

		var value []byte
		if record.Value != nil {
			value, err = io.ReadAll(record.Value)
			if err != nil {
				return nil, fmt.Errorf("partition(%d) read error: %w", partition, err)
			}
		}

		messages = append(messages, Message{
			Topic:     topic,
			Partition: partition,
			Offset:    record.Offset,
			Value:     value,
		})
	}

	return messages, nil
}

// Close releases the broker connections held by the consumer
func (c *PartitionConsumer) Close() error {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return nil
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
}
