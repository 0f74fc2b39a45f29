package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Log        *LogConfig        `mapstructure:"log"`
	Database   *DatabaseConfig   `mapstructure:"database"`
	Redis      *RedisConfig      `mapstructure:"redis"`
	Broker     *BrokerConfig     `mapstructure:"broker"`
	Stripe     *StripeConfig     `mapstructure:"stripe"`
	Twilio     *TwilioConfig     `mapstructure:"twilio"`
	POS        *POSConfig        `mapstructure:"pos"`
	Onboarding *OnboardingConfig `mapstructure:"onboarding"`
	Bootstrap  *BootstrapConfig  `mapstructure:"bootstrap"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	PublicOrderingURL  string        `mapstructure:"public_ordering_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	SecretsKey         string        `mapstructure:"secrets_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig selects the gorm dialect. DSN wins over the discrete
// postgres fields when set.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	Migrate  bool   `mapstructure:"migrate"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type BrokerConfig struct {
	Driver      string   `mapstructure:"driver"`
	RabbitMQURL string   `mapstructure:"rabbitmq_url"`
	Exchange    string   `mapstructure:"exchange"`
	KafkaTopic  string   `mapstructure:"kafka_topic"`
	KafkaBroker []string `mapstructure:"kafka_brokers"`
}

type StripeConfig struct {
	SecretKey  string `mapstructure:"secret_key"`
	RefreshURL string `mapstructure:"refresh_url"`
	ReturnURL  string `mapstructure:"return_url"`
}

type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from"`
}

type POSConfig struct {
	TestTimeout time.Duration `mapstructure:"test_timeout"`
}

type OnboardingConfig struct {
	SnapshotTTL   time.Duration `mapstructure:"snapshot_ttl"`
	StaleAfter    time.Duration `mapstructure:"stale_after"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
}

type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminName     string `mapstructure:"admin_name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.public_ordering_url", "http://localhost:3000")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.token_ttl", 12*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("broker.driver", "none")
	v.SetDefault("broker.exchange", "backoffice.events")
	v.SetDefault("broker.kafka_topic", "backoffice.events")
	v.SetDefault("pos.test_timeout", 10*time.Second)
	v.SetDefault("onboarding.snapshot_ttl", 30*24*time.Hour)
	v.SetDefault("onboarding.stale_after", 7*24*time.Hour)
	v.SetDefault("onboarding.sweep_schedule", "0 9 * * *")
	v.SetDefault("bootstrap.admin_name", "Super Admin")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Load reads the YAML file at path. Every key can be overridden by an
// environment variable, e.g. API_JWT_SIGNING_KEY for api.jwt_signing_key.
func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch loads path and calls onChange with the re-decoded config every time
// the file changes on disk. Invalid edits are reported through onError and
// otherwise ignored.
func Watch(path string, onChange func(*AppConfig), onError func(error)) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}
	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		updated, err := decode(v)
		if err != nil {
			onError(fmt.Errorf("reload %s -> %w", e.Name, err))
			return
		}
		onChange(updated)
	})
	v.WatchConfig()

	return conf, nil
}

func (c *AppConfig) Validate() error {
	if c.API == nil || c.API.JWTSigningKey == "" {
		return fmt.Errorf("api.jwt_signing_key is required")
	}
	if c.API.SecretsKey == "" {
		return fmt.Errorf("api.secrets_key is required")
	}
	if len(c.API.AllowedCORSDomains) == 0 {
		return fmt.Errorf("api.allowed_cors_domains needs at least one origin")
	}
	if c.Database == nil {
		return fmt.Errorf("database section is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.Broker == nil {
		return fmt.Errorf("broker section is required")
	}
	switch c.Broker.Driver {
	case "none", "rabbitmq", "kafka":
	default:
		return fmt.Errorf("unsupported broker.driver %q", c.Broker.Driver)
	}

	return nil
}
