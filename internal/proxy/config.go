package proxy

import "time"

// Config carries the tunables shared by the connection registry, topic
// operations and the sampler.
type Config struct {
	ClientID            string        `mapstructure:"client-id"`
	ConnectTimeout      time.Duration `mapstructure:"connect-timeout"`
	OperationTimeout    time.Duration `mapstructure:"operation-timeout"`
	FetchMaxBytes       int           `mapstructure:"fetch-max-bytes"`
	HealthCheckInterval time.Duration `mapstructure:"health-check-interval"`
}

const (
	DefaultClientID         = "kafka-proxy"
	DefaultConnectTimeout   = 10 * time.Second
	DefaultOperationTimeout = 10 * time.Second
	DefaultFetchMaxBytes    = 1 << 20
)

// WithDefaults returns a copy of c with unset fields filled in
func (c Config) WithDefaults() Config {
	if c.ClientID == "" {
		c.ClientID = DefaultClientID
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = DefaultOperationTimeout
	}
	if c.FetchMaxBytes <= 0 {
		c.FetchMaxBytes = DefaultFetchMaxBytes
	}
	return c
}
