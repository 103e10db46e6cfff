package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Order    OrderConfig    `yaml:"order"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Payment  PaymentConfig  `yaml:"payment"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
	RunMigrations   bool          `yaml:"runMigrations"`
	ConnectAttempts int           `yaml:"connectAttempts"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OrderConfig struct {
	SaveTxTimeout    time.Duration `yaml:"saveTxTimeout"`
	MaxRetryAttempts int           `yaml:"maxRetryAttempts"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Enabled reports whether the product catalog cache should be used.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Brokers      string `yaml:"brokers"`
	MonitorTopic string `yaml:"monitorTopic"`
}

type PaymentConfig struct {
	Provider       string            `yaml:"provider"`
	BaseURL        string            `yaml:"baseUrl"`
	AccessToken    string            `yaml:"accessToken"`
	Timeout        time.Duration     `yaml:"timeout"`
	BreakerTimeout time.Duration     `yaml:"breakerTimeout"`
	MaxFailures    uint32            `yaml:"maxFailures"`
	Totems         map[string]string `yaml:"totems"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "palantir")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "palantir")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("DB_RUN_MIGRATIONS", true)
	viper.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("ORDER_SAVE_TX_TIMEOUT", "5s")
	viper.SetDefault("ORDER_MAX_RETRY_ATTEMPTS", 3)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL", "10m")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_MONITOR_TOPIC", "palantir.monitor")
	viper.SetDefault("PAYMENT_PROVIDER", "fake")
	viper.SetDefault("PAYMENT_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("PAYMENT_ACCESS_TOKEN", "")
	viper.SetDefault("PAYMENT_TIMEOUT", "10s")
	viper.SetDefault("PAYMENT_BREAKER_TIMEOUT", "30s")
	viper.SetDefault("PAYMENT_MAX_FAILURES", 5)

	durations := map[string]time.Duration{}
	for _, key := range []string{"SERVER_SHUTDOWN_TIMEOUT", "DB_CONN_MAX_LIFETIME", "ORDER_SAVE_TX_TIMEOUT", "REDIS_TTL", "PAYMENT_TIMEOUT", "PAYMENT_BREAKER_TIMEOUT"} {
		d, err := time.ParseDuration(viper.GetString(key))
		if err != nil {
			return nil, err
		}
		durations[key] = d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetInt("SERVER_PORT"),
			ShutdownTimeout: durations["SERVER_SHUTDOWN_TIMEOUT"],
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durations["DB_CONN_MAX_LIFETIME"],
			RunMigrations:   viper.GetBool("DB_RUN_MIGRATIONS"),
			ConnectAttempts: viper.GetInt("DB_CONNECT_ATTEMPTS"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Order: OrderConfig{
			SaveTxTimeout:    durations["ORDER_SAVE_TX_TIMEOUT"],
			MaxRetryAttempts: viper.GetInt("ORDER_MAX_RETRY_ATTEMPTS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			TTL:      durations["REDIS_TTL"],
		},
		Kafka: KafkaConfig{
			Brokers:      viper.GetString("KAFKA_BROKERS"),
			MonitorTopic: viper.GetString("KAFKA_MONITOR_TOPIC"),
		},
		Payment: PaymentConfig{
			Provider:       viper.GetString("PAYMENT_PROVIDER"),
			BaseURL:        viper.GetString("PAYMENT_BASE_URL"),
			AccessToken:    viper.GetString("PAYMENT_ACCESS_TOKEN"),
			Timeout:        durations["PAYMENT_TIMEOUT"],
			BreakerTimeout: durations["PAYMENT_BREAKER_TIMEOUT"],
			MaxFailures:    viper.GetUint32("PAYMENT_MAX_FAILURES"),
			Totems:         viper.GetStringMapString("PAYMENT_TOTEMS"),
		},
	}

	return cfg, nil
}
