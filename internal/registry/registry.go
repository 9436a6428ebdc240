// Package registry keeps one administrative connection per Kafka bootstrap server
package registry

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
)

var (
	metricsNamespace = "kafka_proxy"

	connectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name:      "connections_active",
		Namespace: metricsNamespace,
		Help:      "Number of registered cluster connections",
	})

	connectionCreationError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "connection_creation_error_total",
		Namespace: metricsNamespace,
		Help:      "Total number of errors while connecting to a cluster",
	}, []string{"cluster"})
)

// ClusterConnection identifies a registered connection. ID is the bootstrap
// server the connection was created for.
type ClusterConnection struct {
	ID        string `json:"id"`
	ClusterID string `json:"clusterId"`
}

// Entry is a registered connection together with its administrative handle
type Entry struct {
	Connection ClusterConnection
	Admin      client.Admin
}

// Registry maps bootstrap server strings to live connections. Create and
// close are serialized per address; lookups only take the read lock and
// never observe a partially built entry.
type Registry struct {
	newAdmin client.AdminFactory
	config   proxy.Config
	logger   *zerolog.Logger

	locks   *keyedMutex
	mu      sync.RWMutex
	entries map[string]*Entry
}

func New(newAdmin client.AdminFactory, config proxy.Config, logger *zerolog.Logger) *Registry {
	l := logger.With().Str("proxyService", "registry").Logger()
	return &Registry{
		newAdmin: newAdmin,
		config:   config.WithDefaults(),
		logger:   &l,
		locks:    newKeyedMutex(),
		entries:  map[string]*Entry{},
	}
}

// CreateOrGetConnection returns the connection registered for address,
// connecting first if there is none. Connecting is bounded by the
// configured connect timeout. On failure nothing is registered.
func (r *Registry) CreateOrGetConnection(ctx context.Context, address string) (ClusterConnection, error) {
	if entry, ok := r.GetConnection(address); ok {
		r.logger.Info().Str("cluster", address).Str("connectionId", entry.Connection.ID).Msg("Reusing cluster connection")
		return entry.Connection, nil
	}

	unlock := r.locks.Lock(address)
	defer unlock()

	// Another caller may have connected while we waited for the lock
	if entry, ok := r.GetConnection(address); ok {
		r.logger.Info().Str("cluster", address).Str("connectionId", entry.Connection.ID).Msg("Reusing cluster connection")
		return entry.Connection, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.ConnectTimeout)
	defer cancel()

	admin, err := r.newAdmin(address)
	if err != nil {
		return ClusterConnection{}, r.connectionError(address, err)
	}

	clusterID, err := admin.ClusterID(ctx)
	if err != nil {
		if cerr := admin.Close(); cerr != nil {
			r.logger.Warn().Err(cerr).Str("cluster", address).Msg("Error closing admin handle")
		}
		return ClusterConnection{}, r.connectionError(address, err)
	}

	entry := &Entry{
		Connection: ClusterConnection{
			ID:        address,
			ClusterID: clusterID,
		},
		Admin: admin,
	}

	r.mu.Lock()
	r.entries[address] = entry
	r.mu.Unlock()
	connectionsActive.Inc()

	r.logger.Info().
		Str("cluster", address).
		Str("connectionId", entry.Connection.ID).
		Str("clusterId", clusterID).
		Msg("Created cluster connection")

	return entry.Connection, nil
}

func (r *Registry) connectionError(address string, err error) error {
	connectionCreationError.WithLabelValues(address).Inc()

	event := r.logger.Error()
	if client.IsTransientNetworkError(err) {
		event = r.logger.Warn()
	}
	event.Err(err).Str("cluster", address).Msg("Failed to create cluster connection")

	return &ConnectionError{Address: address, Err: err}
}

// GetConnection returns the entry registered for address, if any
func (r *Registry) GetConnection(address string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[address]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// CloseConnection removes and closes the connection registered for address.
// It reports whether there was one. The entry is removed even if closing
// the handle fails.
func (r *Registry) CloseConnection(address string) bool {
	unlock := r.locks.Lock(address)
	defer unlock()

	r.mu.Lock()
	entry, ok := r.entries[address]
	if ok {
		delete(r.entries, address)
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Info().Str("cluster", address).Msg("No cluster connection to close")
		return false
	}
	connectionsActive.Dec()

	if err := entry.Admin.Close(); err != nil {
		r.logger.Warn().Err(err).Str("cluster", address).Msg("Error closing admin handle")
	}
	r.logger.Info().Str("cluster", address).Str("connectionId", entry.Connection.ID).Msg("Closed cluster connection")

	return true
}

// Entries returns a snapshot of the registered connections keyed by address
func (r *Registry) Entries() map[string]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make(map[string]Entry, len(r.entries))
	for address, entry := range r.entries {
		entries[address] = *entry
	}
	return entries
}

// CloseAll closes every registered connection and returns how many were closed
func (r *Registry) CloseAll() int {
	closed := 0
	for address := range r.Entries() {
		if r.CloseConnection(address) {
			closed++
		}
	}
	return closed
}
