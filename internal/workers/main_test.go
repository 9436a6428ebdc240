package workers

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agile-developer/kafka-proxy/internal/mocks"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
	"github.com/agile-developer/kafka-proxy/internal/registry"
)

type fakeConnections struct {
	entries map[string]registry.Entry
	closed  int
}

func (f *fakeConnections) Entries() map[string]registry.Entry {
	return f.entries
}

func (f *fakeConnections) CloseAll() int {
	f.closed++
	return len(f.entries)
}

func TestProxyManager_Probe(t *testing.T) {
	healthy := mocks.NewAdmin(t)
	healthy.EXPECT().ClusterID(mock.Anything).Return("cluster-a", nil).Once()
	broken := mocks.NewAdmin(t)
	broken.EXPECT().ClusterID(mock.Anything).Return("", syscall.ECONNREFUSED).Once()
	changed := mocks.NewAdmin(t)
	changed.EXPECT().ClusterID(mock.Anything).Return("cluster-z", nil).Once()

	connections := &fakeConnections{entries: map[string]registry.Entry{
		"probe-a:9092": {Connection: registry.ClusterConnection{ID: "1", ClusterID: "cluster-a"}, Admin: healthy},
		"probe-b:9092": {Connection: registry.ClusterConnection{ID: "2", ClusterID: "cluster-b"}, Admin: broken},
		"probe-c:9092": {Connection: registry.ClusterConnection{ID: "3", ClusterID: "cluster-c"}, Admin: changed},
	}}

	pm := NewProxyManager(proxy.Config{}, connections, &zerolog.Logger{}).(*ProxyManager)
	pm.probe()

	assert.Equal(t, 0.0, testutil.ToFloat64(connectionProbeError.WithLabelValues("probe-a:9092")))
	assert.Equal(t, 1.0, testutil.ToFloat64(connectionProbeError.WithLabelValues("probe-b:9092")))
	assert.Equal(t, 0.0, testutil.ToFloat64(connectionProbeError.WithLabelValues("probe-c:9092")))
}

func TestProxyManager_StartStop(t *testing.T) {
	admin := mocks.NewAdmin(t)
	admin.EXPECT().ClusterID(mock.Anything).Return("", errors.New("Some error"))

	connections := &fakeConnections{entries: map[string]registry.Entry{
		"loop-a:9092": {Connection: registry.ClusterConnection{ID: "1", ClusterID: "cluster-a"}, Admin: admin},
	}}

	pm := NewProxyManager(proxy.Config{HealthCheckInterval: 10 * time.Millisecond}, connections, &zerolog.Logger{})
	pm.Start()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(connectionProbeError.WithLabelValues("loop-a:9092")) >= 1
	}, time.Second, 10*time.Millisecond)

	pm.Stop()
	assert.Equal(t, 1, connections.closed)
}

func TestProxyManager_DisabledHealthChecks(t *testing.T) {
	connections := &fakeConnections{entries: map[string]registry.Entry{}}

	pm := NewProxyManager(proxy.Config{}, connections, &zerolog.Logger{})
	pm.Start()
	pm.Stop()

	assert.Equal(t, 1, connections.closed)
}
