package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "SHOP_CONFIG_FILE"
	envPrefix         = "SHOP"
	dotEnvFile        = ".env"
)

type session struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	Header      string        `mapstructure:"header"`
}

type topics struct {
	Orders string `mapstructure:"orders"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t tlsFiles) Enabled() bool {
	return t.CA != ""
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
	TLS                tlsFiles `mapstructure:"tls"`
}

// Enabled reports whether placed orders are published.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Session        session    `mapstructure:"session"`
	Broker         broker     `mapstructure:"broker"`
}

var defaults = map[string]any{
	"log_level":                   "info",
	"http_server_addr":            ":8080",
	"sql_db":                      "",
	"session.idle_timeout":        "30m",
	"session.header":              "X-Session-ID",
	"broker.seed_brokers":         []string{},
	"broker.schema_registry_urls": []string{},
	"broker.topics.orders":        "shop-orders",
	"broker.tls.ca":               "",
	"broker.tls.cert":             "",
	"broker.tls.key":              "",
}

// Load reads the config file, the environment and the command line.
// It exits the process on failure.
func Load() Config {
	cfg, err := load(os.Args[1:])
	if err != nil {
		die(err)
	}
	return cfg
}

func load(args []string) (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := getConfigFilepath(args)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err = v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func getConfigFilepath(args []string) (string, error) {
	cmdLine := pflag.NewFlagSet("shop", pflag.ContinueOnError)
	arg := cmdLine.String("config", "", "config file")
	if err := cmdLine.Parse(args); err != nil {
		return "", err
	}
	if cmdLine.Changed("config") {
		return *arg, nil
	}
	return os.Getenv(configFileEnvName), nil
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%t

	Session:
	IdleTimeout=%s
	Header=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		Orders=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB != "",
		c.Session.IdleTimeout,
		c.Session.Header,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.Orders,
	)
}
