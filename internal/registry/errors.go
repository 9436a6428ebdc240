package registry

import (
	"errors"
	"fmt"
)

// ErrNoActiveConnection is returned, wrapped with the address, by operations
// that need a registered connection when there is none
var ErrNoActiveConnection = errors.New("no active connection")

// NoActiveConnection wraps ErrNoActiveConnection with the bootstrap server
func NoActiveConnection(address string) error {
	return fmt.Errorf("cluster: %s does not have an active connection: %w", address, ErrNoActiveConnection)
}

// ConnectionError is returned when a handle to a cluster can not be
// established or its cluster id can not be resolved
type ConnectionError struct {
	Address string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to create connection to cluster: %s, exception: %v", e.Address, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
