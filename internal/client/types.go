package client

// Message is a simpler internal representation of a fetched kafka record
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Value     []byte
}

// TopicInfo represents the information stored about a topic.
type TopicInfo struct {
	Name       string          `json:"name"`
	Partitions []PartitionInfo `json:"partitions"`
}

// PartitionInfo identifies one partition of a topic.
type PartitionInfo struct {
	ID int `json:"partitionId"`
}
