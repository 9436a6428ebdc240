package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agile-developer/kafka-proxy/internal/api"
	"github.com/agile-developer/kafka-proxy/internal/client"
	"github.com/agile-developer/kafka-proxy/internal/proxy"
	"github.com/agile-developer/kafka-proxy/internal/registry"
	"github.com/agile-developer/kafka-proxy/internal/sampler"
	"github.com/agile-developer/kafka-proxy/internal/signals"
	"github.com/agile-developer/kafka-proxy/internal/topics"
	"github.com/agile-developer/kafka-proxy/internal/workers"
)

var (
	version = "development"
)

type Config struct {
	Host        string                 `mapstructure:"host"`
	Port        int                    `mapstructure:"port"`
	MetricsPort int                    `mapstructure:"metrics-port"`
	Level       string                 `mapstructure:"level"`
	Output      string                 `mapstructure:"output"`
	Proxy       proxy.Config           `mapstructure:"proxy"`
	Kafka       client.ConnectorConfig `mapstructure:"kafka"`
}

func main() {
	fs := pflag.NewFlagSet("default", pflag.ContinueOnError)
	fs.String("host", "", "Host to bind service to")
	fs.Int("port", 8080, "HTTP port to bind service to")
	fs.Int("metrics-port", 8081, "HTTP port for the metrics and health server, 0 disables it")
	fs.String("output", "json", "Output target [console, json]")
	fs.String("level", "info", "Log level [debug, info, warn, error, fatal, panic]")
	fs.String("proxy.client-id", proxy.DefaultClientID, "Client id sent to the Kafka brokers")
	fs.Duration("proxy.connect-timeout", proxy.DefaultConnectTimeout, "Deadline for connecting to a cluster")
	fs.Duration("proxy.operation-timeout", proxy.DefaultOperationTimeout, "Deadline for topic list, lookup and create requests")
	fs.Int("proxy.fetch-max-bytes", proxy.DefaultFetchMaxBytes, "Maximum bytes fetched per partition when sampling a topic")
	fs.Duration("proxy.health-check-interval", 30*time.Second, "Interval between cluster connection probes, 0 disables them")
	fs.Bool("kafka.tls.enabled", false, "Connect to the brokers over TLS")
	fs.String("kafka.tls.cert-path", "", "Client certificate for TLS")
	fs.String("kafka.tls.key-path", "", "Client key for TLS")
	fs.String("kafka.tls.ca-cert-path", "", "CA certificate used to verify the brokers")
	fs.String("kafka.tls.server-name", "", "Server name used to verify the brokers")
	fs.Bool("kafka.tls.skip-verify", false, "Skip verification of the broker certificates")
	fs.Bool("kafka.sasl.enabled", false, "Authenticate to the brokers with SASL")
	fs.String("kafka.sasl.mechanism", string(client.SASLMechanismPlain), "SASL mechanism [AWS-MSK-IAM, PLAIN, SCRAM-SHA-256, SCRAM-SHA-512]")
	fs.String("kafka.sasl.username", "", "SASL username")
	fs.String("kafka.sasl.password", "", "SASL password")
	versionFlag := fs.BoolP("version", "v", false, "get version number")

	// Bind flags and environment variables
	viper.SetEnvPrefix("KAFKA_PROXY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.BindPFlags(fs)
	viper.AutomaticEnv()

	// parse flags
	err := fs.Parse(os.Args[1:])
	switch {
	case err == pflag.ErrHelp:
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		fs.PrintDefaults()
		os.Exit(2)
	case *versionFlag:
		fmt.Println(version)
		os.Exit(0)
	}

	// Load config
	var config Config
	if err = viper.Unmarshal(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Config unmarshal failed: %s\n\n", err.Error())
		os.Exit(2)
	}
	if config.Kafka.SASL.Enabled {
		config.Kafka.SASL.Mechanism, err = client.SASLNameToMechanism(string(config.Kafka.SASL.Mechanism))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
			os.Exit(2)
		}
	}
	config.Proxy = config.Proxy.WithDefaults()

	// Setup logger
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if config.Output == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	logger = logger.With().
		Timestamp().
		Str("version", version).
		Str("service", "kafka-proxy").
		Logger()

	logger.Info().
		Str("proxy", fmt.Sprintf("%+v", config.Proxy)).
		Bool("tls", config.Kafka.TLS.Enabled).
		Bool("sasl", config.Kafka.SASL.Enabled).
		Str("saslMechanism", string(config.Kafka.SASL.Mechanism)).
		Msg("Starting Kafka Proxy")

	connectorConfig := config.Kafka
	connectorConfig.ClientID = config.Proxy.ClientID
	connectorConfig.Timeout = config.Proxy.OperationTimeout

	connections := registry.New(client.NewBrokerAdminFactory(connectorConfig), config.Proxy, &logger)
	topicSampler := sampler.New(client.NewPartitionConsumerFactory(connectorConfig, client.ConsumerConfig{
		MaxBytes: config.Proxy.FetchMaxBytes,
	}), &logger)
	topicService := topics.NewService(connections, topicSampler, config.Proxy, &logger)

	// start proxy manager
	proxyManager := workers.NewProxyManager(config.Proxy, connections, &logger)
	proxyManager.Start()

	// Start HTTP server
	srvCfg := api.Config{
		Host:    config.Host,
		Port:    strconv.Itoa(config.Port),
		Service: "kafka-proxy",
	}
	if config.MetricsPort > 0 {
		srvCfg.MetricsPort = strconv.Itoa(config.MetricsPort)
	}
	srv, _ := api.NewServer(&srvCfg, connections, topicService, &logger)
	httpServer, healthy, ready := srv.ListenAndServe()

	// graceful shutdown
	stopCh := signals.SetupSignalHandler()
	serverShutdownTimeout := 5 * time.Second
	sd, _ := signals.NewShutdown(serverShutdownTimeout, &logger)
	sd.Graceful(stopCh, httpServer, proxyManager, healthy, ready)
}
