package api

type Config struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	MetricsPort string `mapstructure:"metrics-port"`
	Service     string `mapstructure:"service"`
}
