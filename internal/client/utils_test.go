package client

import (
	kafka "github.com/segmentio/kafka-go"
)

const (
	mockTopicName = "fake-topic"
	mockClusterID = "fake-cluster-id"
)

func mockGetBrokers() []kafka.Broker {
	return []kafka.Broker{
		{ID: 0, Rack: "rack1"},
		{ID: 1, Rack: "rack2"},
		{ID: 2, Rack: "rack3"},
	}
}

func mockGetTopics() []kafka.Topic {
	return []kafka.Topic{
		{
			Name: mockTopicName,
			Partitions: []kafka.Partition{
				{Topic: mockTopicName, ID: 2, Replicas: mockGetBrokers()},
				{Topic: mockTopicName, ID: 0, Replicas: mockGetBrokers()},
				{Topic: mockTopicName, ID: 1, Replicas: mockGetBrokers()},
			},
		},
		{
			Name:     "__consumer_offsets",
			Internal: true,
			Partitions: []kafka.Partition{
				{Topic: "__consumer_offsets", ID: 0, Replicas: mockGetBrokers()},
			},
		},
		{
			Name: "another-topic",
			Partitions: []kafka.Partition{
				{Topic: "another-topic", ID: 0, Replicas: mockGetBrokers()},
			},
		},
	}
}

func mockGetRecords(values ...string) kafka.RecordReader {
	var records []kafka.Record
	for i, v := range values {
		records = append(records, kafka.Record{
			Offset: int64(i),
			Value:  kafka.NewBytes([]byte(v)),
		})
	}
	return kafka.NewRecordReader(records...)
}

type fakeTransport struct {
	closed int
}

func (f *fakeTransport) CloseIdleConnections() {
	f.closed++
}
