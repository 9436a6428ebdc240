package sampler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/mocks"
)

const (
	mockAddress = "broker-1:9092"
	mockTopic   = "fake-topic"
)

func factoryFor(consumer client.Consumer, err error) client.ConsumerFactory {
	return func(string) (client.Consumer, error) {
		if err != nil {
			return nil, err
		}
		return consumer, nil
	}
}

func TestSampler_Sample(t *testing.T) {
	consumer := mocks.NewConsumer(t)
	consumer.EXPECT().Partitions(mock.Anything, mockTopic).Return([]int{0, 1}, nil).Once()
	consumer.EXPECT().Poll(mock.Anything, mockTopic, []int{0, 1}).
		RunAndReturn(func(ctx context.Context, _ string, _ []int) ([]client.Message, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(PollTimeout), deadline, 100*time.Millisecond)
			return []client.Message{
				{Topic: mockTopic, Partition: 0, Offset: 0, Value: []byte("first")},
				{Topic: mockTopic, Partition: 0, Offset: 1, Value: []byte("second")},
				{Topic: mockTopic, Partition: 1, Offset: 0, Value: []byte("third")},
			}, nil
		}).
		Once()
	consumer.EXPECT().Close().Return(nil).Once()

	s := New(factoryFor(consumer, nil), &zerolog.Logger{})
	before := testutil.ToFloat64(recordsSampled.WithLabelValues(mockAddress))

	got, err := s.Sample(context.Background(), mockAddress, mockTopic)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, got)
	assert.Equal(t, before+3, testutil.ToFloat64(recordsSampled.WithLabelValues(mockAddress)))
}

func TestSampler_SampleEmpty(t *testing.T) {
	consumer := mocks.NewConsumer(t)
	consumer.EXPECT().Partitions(mock.Anything, mockTopic).Return([]int{0}, nil).Once()
	consumer.EXPECT().Poll(mock.Anything, mockTopic, []int{0}).Return([]client.Message{}, nil).Once()
	consumer.EXPECT().Close().Return(nil).Once()

	s := New(factoryFor(consumer, nil), &zerolog.Logger{})
	got, err := s.Sample(context.Background(), mockAddress, mockTopic)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSampler_SampleClosesOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		mocks func(t *testing.T) *mocks.Consumer
	}{
		{
			name: "PartitionsError",
			mocks: func(t *testing.T) *mocks.Consumer {
				m := mocks.NewConsumer(t)
				m.EXPECT().Partitions(mock.Anything, mockTopic).Return(nil, errors.New("unknown topic")).Once()
				m.EXPECT().Close().Return(nil).Once()
				return m
			},
		},
		{
			name: "PollError",
			mocks: func(t *testing.T) *mocks.Consumer {
				m := mocks.NewConsumer(t)
				m.EXPECT().Partitions(mock.Anything, mockTopic).Return([]int{0}, nil).Once()
				m.EXPECT().Poll(mock.Anything, mockTopic, []int{0}).Return(nil, errors.New("broker gone")).Once()
				m.EXPECT().Close().Return(errors.New("close failed")).Once()
				return m
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(factoryFor(tt.mocks(t), nil), &zerolog.Logger{})
			before := testutil.ToFloat64(sampleError.WithLabelValues(mockAddress))

			got, err := s.Sample(context.Background(), mockAddress, mockTopic)

			assert.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, before+1, testutil.ToFloat64(sampleError.WithLabelValues(mockAddress)))
		})
	}
}

func TestSampler_SampleFactoryError(t *testing.T) {
	s := New(factoryFor(nil, errors.New("invalid broker address")), &zerolog.Logger{})

	_, err := s.Sample(context.Background(), mockAddress, mockTopic)

	assert.EqualError(t, err, "invalid broker address")
}

func TestSampler_SampleOpensFreshConsumer(t *testing.T) {
	opened := 0
	factory := func(string) (client.Consumer, error) {
		opened++
		m := mocks.NewConsumer(t)
		m.EXPECT().Partitions(mock.Anything, mockTopic).Return([]int{0}, nil).Once()
		m.EXPECT().Poll(mock.Anything, mockTopic, []int{0}).Return([]client.Message{{Value: []byte("v")}}, nil).Once()
		m.EXPECT().Close().Return(nil).Once()
		return m, nil
	}

	s := New(factory, &zerolog.Logger{})
	for i := 0; i < 3; i++ {
		got, err := s.Sample(context.Background(), mockAddress, mockTopic)
		require.NoError(t, err)
		assert.Equal(t, []string{"v"}, got)
	}
	assert.Equal(t, 3, opened)
}
