//go:build integration
// +build integration

package topics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
	"github.com/agile-developer/kafka-proxy/internal/registry"
	"github.com/agile-developer/kafka-proxy/internal/sampler"
	"github.com/agile-developer/kafka-proxy/internal/topics"
)

// Run these tests with: go test -tags=integration ./internal/topics -v

func setupTestKafka(t *testing.T, ctx context.Context) string {
	t.Helper()

	kafkaContainer, err := tckafka.Run(ctx,
		"apache/kafka:latest",
		tckafka.WithClusterID("test-cluster"),
	)
	require.NoError(t, err, "failed to start Kafka container")
	t.Cleanup(func() {
		if err := kafkaContainer.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate Kafka container: %v", err)
		}
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")
	require.NotEmpty(t, brokers, "no Kafka brokers returned")

	return brokers[0]
}

func TestIntegration_CreateProduceSample(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	broker := setupTestKafka(t, ctx)
	logger := zerolog.Nop()
	config := proxy.Config{}.WithDefaults()
	connectorConfig := client.ConnectorConfig{
		ClientID: config.ClientID,
		Timeout:  config.OperationTimeout,
	}

	connections := registry.New(client.NewBrokerAdminFactory(connectorConfig), config, &logger)
	defer connections.CloseAll()
	topicSampler := sampler.New(client.NewPartitionConsumerFactory(connectorConfig, client.ConsumerConfig{}), &logger)
	service := topics.NewService(connections, topicSampler, config, &logger)

	var conn registry.ClusterConnection
	require.Eventually(t, func() bool {
		var err error
		conn, err = connections.CreateOrGetConnection(ctx, broker)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond, "broker never accepted a connection")
	assert.Equal(t, broker, conn.ID)
	assert.NotEmpty(t, conn.ClusterID)

	again, err := connections.CreateOrGetConnection(ctx, broker)
	require.NoError(t, err)
	assert.Equal(t, conn, again)

	topic := fmt.Sprintf("sample-%d", time.Now().UnixNano())
	state, err := service.LookupTopic(ctx, broker, topic)
	require.NoError(t, err)
	assert.Equal(t, topics.TopicAbsent, state)

	id, created, err := service.EnsureTopic(ctx, broker, topic)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, topics.TopicID(conn.ClusterID, topic), id)

	_, created, err = service.EnsureTopic(ctx, broker, topic)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, service.IsValidTopic(ctx, broker, topic))

	listed, err := service.ListForCluster(ctx, broker)
	require.NoError(t, err)
	var names []string
	for _, info := range listed {
		names = append(names, info.Name)
	}
	assert.Contains(t, names, topic)

	producerConfig := connectorConfig
	producerConfig.BrokerAddrs = []string{broker}
	producer, err := client.NewProducerClient(producerConfig, topic)
	require.NoError(t, err)
	defer producer.Close()
	require.NoError(t, producer.Write(ctx, []byte("data1"), []byte("data2"), []byte("data3")))

	var records []string
	require.Eventually(t, func() bool {
		records, err = service.ConsumeRecords(ctx, broker, topic)
		return err == nil && len(records) == 3
	}, 30*time.Second, time.Second, "records never became visible")
	assert.Equal(t, []string{"data1", "data2", "data3"}, records)

	require.True(t, connections.CloseConnection(broker))
	_, err = service.ListForCluster(ctx, broker)
	assert.ErrorIs(t, err, registry.ErrNoActiveConnection)
}
