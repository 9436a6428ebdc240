package client

import (
	"context"
	"errors"
	"testing"

	"github.com/agile-developer/kafka-proxy/internal/client/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewBrokerAdmin(t *testing.T) {
	type args struct {
		config ConnectorConfig
	}
	tests := []struct {
		name      string
		args      args
		assertion assert.ErrorAssertionFunc
	}{
		{
			name:      "Default",
			args:      args{ConnectorConfig{}},
			assertion: assert.NoError,
		},
		{
			name: "BadMechanism",
			args: args{ConnectorConfig{
				SASL: SASLConfig{Enabled: true, Mechanism: "INVALID"},
			}},
			assertion: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBrokerAdmin(tt.args.config)
			tt.assertion(t, err)
		})
	}
}

func TestNewBrokerAdminFactory(t *testing.T) {
	factory := NewBrokerAdminFactory(ConnectorConfig{ClientID: "test-client"})

	admin, err := factory("localhost:9092")
	assert.NoError(t, err)
	assert.NotNil(t, admin)

	_, err = factory("not an address")
	assert.Error(t, err)
}

func TestBrokerAdmin_ClusterID(t *testing.T) {
	type fields struct {
		client func(t *testing.T) KafkaAdminClient
	}
	tests := []struct {
		name      string
		fields    fields
		want      string
		assertion assert.ErrorAssertionFunc
	}{
		{
			name: "Default",
			fields: fields{client: func(t *testing.T) KafkaAdminClient {
				m := mocks.NewKafkaAdminClient(t)
				m.On("Metadata", mock.Anything, mock.MatchedBy(func(req *kafka.MetadataRequest) bool {
					return req.Topics != nil && len(req.Topics) == 0
				})).Return(&kafka.MetadataResponse{
					ClusterID: mockClusterID,
					Brokers:   mockGetBrokers(),
				}, nil)
				return m
			}},
			want:      mockClusterID,
			assertion: assert.NoError,
		},
		{
			name: "NoClusterID",
			fields: fields{client: func(t *testing.T) KafkaAdminClient {
				m := mocks.NewKafkaAdminClient(t)
				m.On("Metadata", mock.Anything, mock.Anything).
					Return(&kafka.MetadataResponse{Brokers: mockGetBrokers()}, nil)
				return m
			}},
			want: "",
			assertion: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrNoClusterID)
			},
		},
		{
			name: "Unreachable",
			fields: fields{client: func(t *testing.T) KafkaAdminClient {
				m := mocks.NewKafkaAdminClient(t)
				m.On("Metadata", mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused"))
				return m
			}},
			want:      "",
			assertion: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &BrokerAdmin{
				client: tt.fields.client(t),
			}
			got, err := c.ClusterID(context.Background())
			tt.assertion(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrokerAdmin_ListTopics(t *testing.T) {
	mockKafkaAdminClient := mocks.NewKafkaAdminClient(t)

	mockKafkaAdminClient.
		On("Metadata", mock.Anything, mock.MatchedBy(func(req *kafka.MetadataRequest) bool {
			return req.Topics == nil
		})).
		Return(&kafka.MetadataResponse{
			Topics:  mockGetTopics(),
			Brokers: mockGetBrokers(),
		}, nil)

	tests := []struct {
		name            string
		includeInternal bool
		want            []string
	}{
		{
			name:            "ExcludeInternal",
			includeInternal: false,
			want:            []string{"another-topic", mockTopicName},
		},
		{
			name:            "IncludeInternal",
			includeInternal: true,
			want:            []string{"__consumer_offsets", "another-topic", mockTopicName},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &BrokerAdmin{
				client: mockKafkaAdminClient,
			}
			got, err := c.ListTopics(context.Background(), tt.includeInternal)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrokerAdmin_ListTopicsEmpty(t *testing.T) {
	mockKafkaAdminClient := mocks.NewKafkaAdminClient(t)
	mockKafkaAdminClient.
		On("Metadata", mock.Anything, mock.Anything).
		Return(&kafka.MetadataResponse{Brokers: mockGetBrokers()}, nil)

	c := &BrokerAdmin{client: mockKafkaAdminClient}
	got, err := c.ListTopics(context.Background(), false)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBrokerAdmin_DescribeTopics(t *testing.T) {
	mockKafkaAdminClient := mocks.NewKafkaAdminClient(t)

	mockKafkaAdminClient.
		On("Metadata", mock.Anything, mock.Anything).
		Return(&kafka.MetadataResponse{
			Topics:  mockGetTopics(),
			Brokers: mockGetBrokers(),
		}, nil)

	type args struct {
		ctx   context.Context
		names []string
	}
	tests := []struct {
		name      string
		args      args
		want      []TopicInfo
		assertion assert.ErrorAssertionFunc
	}{
		{
			name: "Default",
			args: args{context.Background(), []string{mockTopicName, "another-topic"}},
			want: []TopicInfo{
				{Name: mockTopicName, Partitions: []PartitionInfo{{ID: 0}, {ID: 1}, {ID: 2}}},
				{Name: "another-topic", Partitions: []PartitionInfo{{ID: 0}}},
			},
			assertion: assert.NoError,
		},
		{
			name:      "MissingTopic",
			args:      args{context.Background(), []string{mockTopicName, "missing-topic"}},
			want:      nil,
			assertion: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &BrokerAdmin{
				client: mockKafkaAdminClient,
			}
			got, err := c.DescribeTopics(tt.args.ctx, tt.args.names)
			tt.assertion(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrokerAdmin_DescribeTopicsTopicError(t *testing.T) {
	mockKafkaAdminClient := mocks.NewKafkaAdminClient(t)
	mockKafkaAdminClient.
		On("Metadata", mock.Anything, mock.Anything).
		Return(&kafka.MetadataResponse{
			Topics: []kafka.Topic{{Name: mockTopicName, Error: kafka.LeaderNotAvailable}},
		}, nil)

	c := &BrokerAdmin{client: mockKafkaAdminClient}
	_, err := c.DescribeTopics(context.Background(), []string{mockTopicName})
	assert.ErrorIs(t, err, kafka.LeaderNotAvailable)
}

func TestBrokerAdmin_CreateTopic(t *testing.T) {
	mockKafkaAdminClient := mocks.NewKafkaAdminClient(t)
	mockKafkaAdminClientWithError := mocks.NewKafkaAdminClient(t)

	mockKafkaAdminClient.
		On("CreateTopics", mock.Anything, mock.MatchedBy(func(req *kafka.CreateTopicsRequest) bool {
			return len(req.Topics) == 1 &&
				req.Topics[0].Topic == mockTopicName &&
				req.Topics[0].NumPartitions == 1 &&
				req.Topics[0].ReplicationFactor == 1
		})).
		Return(&kafka.CreateTopicsResponse{}, nil)

	mockKafkaAdminClientWithError.
		On("CreateTopics", mock.Anything, mock.Anything).
		Return(&kafka.CreateTopicsResponse{
			Errors: map[string]error{mockTopicName: kafka.TopicAlreadyExists},
		}, nil)

	type fields struct {
		client KafkaAdminClient
	}
	tests := []struct {
		name      string
		fields    fields
		assertion assert.ErrorAssertionFunc
	}{
		{
			name:      "Default",
			fields:    fields{client: mockKafkaAdminClient},
			assertion: assert.NoError,
		},
		{
			name:   "CatchResponseError",
			fields: fields{client: mockKafkaAdminClientWithError},
			assertion: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, kafka.TopicAlreadyExists)
			},
		}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &BrokerAdmin{
				client: tt.fields.client,
			}
			tt.assertion(t, c.CreateTopic(context.Background(), mockTopicName, 1, 1))
		})
	}
}

func TestBrokerAdmin_Close(t *testing.T) {
	transport := &fakeTransport{}
	c := &BrokerAdmin{
		client:    mocks.NewKafkaAdminClient(t),
		transport: transport,
	}

	assert.NoError(t, c.Close())
	assert.Equal(t, 1, transport.closed)
}
