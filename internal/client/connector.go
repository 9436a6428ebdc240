package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	sigv4 "github.com/aws/aws-sdk-go/aws/signer/v4"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/aws_msk_iam"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

const defaultDialTimeout = 10 * time.Second

// SASLMechanism is the name of a SASL mechanism that will be used for client authentication.
type SASLMechanism string

const (
	SASLMechanismAWSMSKIAM   SASLMechanism = "aws-msk-iam"
	SASLMechanismPlain       SASLMechanism = "plain"
	SASLMechanismScramSHA256 SASLMechanism = "scram-sha-256"
	SASLMechanismScramSHA512 SASLMechanism = "scram-sha-512"
)

// ConnectorConfig contains the configuration used to contruct a connector.
//
// BrokerAddrs, ClientID and Timeout are filled per handle by the factories,
// only TLS and SASL come from the process configuration.
type ConnectorConfig struct {
	BrokerAddrs []string      `mapstructure:"-"`
	ClientID    string        `mapstructure:"-"`
	Timeout     time.Duration `mapstructure:"-"`
	TLS         TLSConfig     `mapstructure:"tls"`
	SASL        SASLConfig    `mapstructure:"sasl"`
}

// TLSConfig stores the TLS-related configuration for a connection.
type TLSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CertPath   string `mapstructure:"cert-path"`
	KeyPath    string `mapstructure:"key-path"`
	CACertPath string `mapstructure:"ca-cert-path"`
	ServerName string `mapstructure:"server-name"`
	SkipVerify bool   `mapstructure:"skip-verify"`
}

// SASLConfig stores the SASL-related configuration for a connection.
type SASLConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Mechanism SASLMechanism `mapstructure:"mechanism"`
	Username  string        `mapstructure:"username"`
	Password  string        `mapstructure:"password"`
}

// Connector is a wrapper around the low-level, kafka-go transport and client.
type Connector struct {
	Config      ConnectorConfig
	Transport   *kafka.Transport
	KafkaClient *kafka.Client
}

// NewConnector contructs a new Connector instance given the argument config.
// No network traffic happens until the client is first used.
func NewConnector(config ConnectorConfig) (*Connector, error) {
	connector := &Connector{
		Config: config,
	}

	mechanismClient, err := saslMechanism(config.SASL)
	if err != nil {
		return nil, err
	}
	tlsConfig, err := tlsClientConfig(config.TLS)
	if err != nil {
		return nil, err
	}

	connector.Transport = &kafka.Transport{
		DialTimeout: defaultDialTimeout,
		ClientID:    config.ClientID,
		SASL:        mechanismClient,
		TLS:         tlsConfig,
	}
	connector.KafkaClient = &kafka.Client{
		Addr:      kafka.TCP(config.BrokerAddrs...),
		Timeout:   config.Timeout,
		Transport: connector.Transport,
	}

	return connector, nil
}

func saslMechanism(config SASLConfig) (sasl.Mechanism, error) {
	if !config.Enabled {
		return nil, nil
	}

	switch config.Mechanism {
	case SASLMechanismAWSMSKIAM:
		sess, err := session.NewSession()
		if err != nil {
			return nil, fmt.Errorf("loading AWS session for %s: %w", config.Mechanism, err)
		}
		signer := sigv4.NewSigner(sess.Config.Credentials)
		region := aws.StringValue(sess.Config.Region)

		return &aws_msk_iam.Mechanism{
			Signer: signer,
			Region: region,
		}, nil
	case SASLMechanismPlain:
		return plain.Mechanism{
			Username: config.Username,
			Password: config.Password,
		}, nil
	case SASLMechanismScramSHA256:
		return scram.Mechanism(scram.SHA256, config.Username, config.Password)
	case SASLMechanismScramSHA512:
		return scram.Mechanism(scram.SHA512, config.Username, config.Password)
	default:
		return nil, fmt.Errorf("unrecognized SASL mechanism: %s", config.Mechanism)
	}
}

func tlsClientConfig(config TLSConfig) (*tls.Config, error) {
	if !config.Enabled {
		return nil, nil
	}

	var certs []tls.Certificate
	var caCertPool *x509.CertPool

	if config.CertPath != "" && config.KeyPath != "" {
		cert, err := tls.LoadX509KeyPair(config.CertPath, config.KeyPath)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if config.CACertPath != "" {
		caCertPool = x509.NewCertPool()
		caCertContents, err := os.ReadFile(config.CACertPath)
		if err != nil {
			return nil, err
		}
		if ok := caCertPool.AppendCertsFromPEM(caCertContents); !ok {
			return nil, fmt.Errorf(
				"could not append CA certs from %s",
				config.CACertPath,
			)
		}
	}

	return &tls.Config{
		Certificates:       certs,
		RootCAs:            caCertPool,
		InsecureSkipVerify: config.SkipVerify,
		ServerName:         config.ServerName,
	}, nil
}

// SASLNameToMechanism converts the argument SASL mechanism name string to a valid instance of
// the SASLMechanism enum.
func SASLNameToMechanism(name string) (SASLMechanism, error) {
	normalizedName := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	mechanism := SASLMechanism(normalizedName)

	switch mechanism {
	case SASLMechanismAWSMSKIAM,
		SASLMechanismPlain,
		SASLMechanismScramSHA256,
		SASLMechanismScramSHA512:
		return mechanism, nil
	default:
		return mechanism, fmt.Errorf(
			"SASL mechanism '%s' is not valid; choices are AWS-MSK-IAM, PLAIN, SCRAM-SHA-256, and SCRAM-SHA-512",
			mechanism,
		)
	}
}

// ParseBootstrapServers splits a comma separated bootstrap server string into
// broker addresses. Each entry must be host:port, optionally prefixed with a
// listener scheme such as PLAINTEXT:// which is dropped.
func ParseBootstrapServers(bootstrapServer string) ([]string, error) {
	var addrs []string
	for _, entry := range strings.Split(bootstrapServer, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if i := strings.Index(entry, "://"); i >= 0 {
			entry = entry[i+3:]
		}
		host, port, err := net.SplitHostPort(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid broker address %q: %w", entry, err)
		}
		if host == "" || port == "" {
			return nil, fmt.Errorf("invalid broker address %q: missing host or port", entry)
		}
		addrs = append(addrs, net.JoinHostPort(host, port))
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no broker addresses in %q", bootstrapServer)
	}
	return addrs, nil
}
