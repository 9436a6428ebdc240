package topics

import (
	"errors"
	"fmt"
)

// ErrNoTopics is returned, wrapped with the address, when a cluster has no
// non-internal topics
var ErrNoTopics = errors.New("no topics found")

func noTopics(address string) error {
	return fmt.Errorf("no topics found for cluster: %s: %w", address, ErrNoTopics)
}

// OperationError is returned when an administrative or consume request to
// the cluster fails
type OperationError struct {
	Op      string
	Address string
	Topic   string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Op == OpConsume {
		return fmt.Sprintf("exception encountered while consuming records for cluster: %s and topic: %s: %v", e.Address, e.Topic, e.Err)
	}
	if e.Topic != "" {
		return fmt.Sprintf("%s topic %s for cluster: %s: %v", e.Op, e.Topic, e.Address, e.Err)
	}
	return fmt.Sprintf("%s topics for cluster: %s: %v", e.Op, e.Address, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

const (
	OpList     = "list"
	OpDescribe = "describe"
	OpCreate   = "create"
	OpConsume  = "consume"
)
