package client

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer writes record values to one topic
type Producer interface {
	Write(ctx context.Context, values ...[]byte) error
	Close() error
}

var _ Producer = (*ProducerClient)(nil)

type ProducerClient struct {
	writer KafkaWriterClient
}

// NewProducerClient returns a synchronous producer for topic. Writes wait for
// all in-sync replicas so a read issued afterwards observes them.
func NewProducerClient(config ConnectorConfig, topic string) (*ProducerClient, error) {
	connector, err := NewConnector(config)
	if err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(connector.Config.BrokerAddrs...),
		Transport:    connector.Transport,
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &ProducerClient{
		writer: writer,
	}, nil
}

func (c *ProducerClient) Write(ctx context.Context, values ...[]byte) error {
	var kafkaMessages []kafka.Message
	for _, v := range values {
		kafkaMessages = append(kafkaMessages, kafka.Message{
			Value: v,
		})
	}

	return c.writer.WriteMessages(ctx, kafkaMessages...)
}

func (c *ProducerClient) Close() error {
	return c.writer.Close()
}
