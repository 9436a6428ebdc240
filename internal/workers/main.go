// Package workers defines an interface for proxy workers and related implementations
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
	"github.com/agile-developer/kafka-proxy/internal/registry"
)

// Worker interface exposing main operations on proxy workers
type Worker interface {
	Start()
	Stop()
}

// Connections is the part of the registry the manager drives
type Connections interface {
	Entries() map[string]registry.Entry
	CloseAll() int
}

var _ Connections = (*registry.Registry)(nil)

var (
	connectionProbeError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "connection_probe_error_total",
		Namespace: "kafka_proxy",
		Help:      "Total number of failed health probes of registered cluster connections",
	}, []string{"cluster"})
)

// ProxyManager periodically probes the registered cluster connections and
// closes all of them on stop. A failing probe is reported, the connection
// stays registered.
type ProxyManager struct {
	config      *proxy.Config
	connections Connections
	stop        chan struct{}
	syncStop    sync.WaitGroup
	logger      *zerolog.Logger
}

// NewProxyManager returns an instance of the proxy manager worker
func NewProxyManager(config proxy.Config, connections Connections, logger *zerolog.Logger) Worker {
	config = config.WithDefaults()
	l := logger.With().Str("proxyService", "manager").Logger()
	return &ProxyManager{
		config:      &config,
		connections: connections,
		logger:      &l,
	}
}

// Start starts a timer for periodic connection probes
func (pm *ProxyManager) Start() {
	pm.logger.Info().Msg("Starting proxy manager")

	pm.stop = make(chan struct{})
	if pm.config.HealthCheckInterval <= 0 {
		pm.logger.Info().Msg("Connection health checks disabled")
		return
	}

	pm.syncStop.Add(1)
	pm.logger.Info().Dur("interval", pm.config.HealthCheckInterval).Msg("Running connection health check loop")
	ticker := time.NewTicker(pm.config.HealthCheckInterval)
	go func() {
		defer pm.syncStop.Done()
		for {
			select {
			case <-ticker.C:
				pm.probe()
			case <-pm.stop:
				ticker.Stop()
				pm.logger.Info().Msg("Stopping proxy manager health check loop")
				return
			}
		}
	}()
}

// Stop stops the probe timer and closes every cluster connection
func (pm *ProxyManager) Stop() {
	pm.logger.Info().Msg("Stopping proxy manager")

	// ask to stop the ticker loop and wait
	close(pm.stop)
	pm.syncStop.Wait()

	closed := pm.connections.CloseAll()

	pm.logger.Info().Int("connections", closed).Msg("Proxy manager closed")
}

func (pm *ProxyManager) probe() {
	entries := pm.connections.Entries()
	pm.logger.Debug().Int("connections", len(entries)).Msg("Probing cluster connections")

	for address, entry := range entries {
		ctx, cancel := context.WithTimeout(context.Background(), pm.config.OperationTimeout)
		clusterID, err := entry.Admin.ClusterID(ctx)
		cancel()

		switch {
		case err != nil:
			connectionProbeError.WithLabelValues(address).Inc()
			event := pm.logger.Error()
			if client.IsDisconnection(err) || client.IsTransientNetworkError(err) {
				event = pm.logger.Warn()
			}
			event.Err(err).Str("cluster", address).Msg("Cluster connection probe failed")
		case clusterID != entry.Connection.ClusterID:
			pm.logger.Warn().
				Str("cluster", address).
				Str("clusterId", entry.Connection.ClusterID).
				Str("reportedClusterId", clusterID).
				Msg("Cluster id changed since connecting")
		}
	}
}
