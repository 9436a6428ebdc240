package client

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaAdminClient is a kafka.Client compatible interface
type KafkaAdminClient interface {
	Metadata(ctx context.Context, req *kafka.MetadataRequest) (*kafka.MetadataResponse, error)
	CreateTopics(ctx context.Context, req *kafka.CreateTopicsRequest) (*kafka.CreateTopicsResponse, error)
}

var _ KafkaAdminClient = &kafka.Client{}

// KafkaFetchClient is a kafka.Client compatible interface used for partition reads
type KafkaFetchClient interface {
	Metadata(ctx context.Context, req *kafka.MetadataRequest) (*kafka.MetadataResponse, error)
	Fetch(ctx context.Context, req *kafka.FetchRequest) (*kafka.FetchResponse, error)
}

var _ KafkaFetchClient = &kafka.Client{}

// KafkaWriterClient is a kafka.Writer compatible interface
type KafkaWriterClient interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ KafkaWriterClient = &kafka.Writer{}

// idleCloser is implemented by kafka.Transport
type idleCloser interface {
	CloseIdleConnections()
}

var _ idleCloser = &kafka.Transport{}
