package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BULWARK_"

// Config is the full process configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Server   Server         `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Kafka    KafkaConfig    `koanf:"kafka"`
	Identity IdentityConfig `koanf:"identity"`
	Audit    AuditConfig    `koanf:"audit"`
	Notify   NotifyConfig   `koanf:"notify"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL          string        `koanf:"url"`
	PoolSize     int           `koanf:"pool_size"`
	MinIdleConns int           `koanf:"min_idle_conns"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type KafkaConfig struct {
	Brokers     []string `koanf:"brokers"`
	NotifyTopic string   `koanf:"notify_topic"`
	ClientID    string   `koanf:"client_id"`
}

// NotifyConfig drives the outbox relay.
type NotifyConfig struct {
	RelayInterval time.Duration `koanf:"relay_interval"`
	RelayBatch    int           `koanf:"relay_batch"`
	// MaxAttempts of 1 means a failed push is not retried.
	MaxAttempts int `koanf:"max_attempts"`
	// TicketMarkerTTL bounds how long a ticket-start push suppresses repeats.
	TicketMarkerTTL time.Duration `koanf:"ticket_marker_ttl"`
}

// IdentityConfig configures the directory client and its lookup cache.
type IdentityConfig struct {
	DirectoryURL     string        `koanf:"directory_url"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	RequestsPerSec   float64       `koanf:"requests_per_sec"`
	Burst            int           `koanf:"burst"`
	BreakerFailures  int           `koanf:"breaker_failures"`
	BreakerCooldown  time.Duration `koanf:"breaker_cooldown"`
	CacheCapacity    int           `koanf:"cache_capacity"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
	RedisCacheTTL    time.Duration `koanf:"redis_cache_ttl"`
	EmailBatchSize   int           `koanf:"email_batch_size"`
	EmployedCacheTTL time.Duration `koanf:"employed_cache_ttl"`
}

// AuditConfig holds the compliance policy knobs the rule engine and the task
// workflow read.
type AuditConfig struct {
	// Users receive REVIEWED pushes and the daily risk reminder.
	Users []string `koanf:"users"`
	// DBAAdmins is the database admin allowlist (account ids).
	DBAAdmins []string `koanf:"dba_admins"`
	// BGAdminRoles maps an application business group to its admin role name.
	BGAdminRoles map[string]string `koanf:"bg_admin_roles"`
	// SelfOperatedHostTags are regex fragments for hosts whose root users are not OS admins.
	SelfOperatedHostTags []string `koanf:"self_operated_host_tags"`
	// ServiceAccounts are excluded from review feeds.
	ServiceAccounts []string `koanf:"service_accounts"`
	// HTTPSHost prefixes report links, with trailing slash.
	HTTPSHost string `koanf:"https_host"`
	// TicketURL formats online ticket links; {ticket_id} is substituted.
	TicketURL string `koanf:"ticket_url"`
	// Debug disables the early-start guard on tasks.
	Debug              bool `koanf:"debug"`
	PreheatConcurrency int  `koanf:"preheat_concurrency"`
	DormancyDays       int  `koanf:"dormancy_days"`
	// FeedCacheTTL bounds how long assembled account feeds stay in Redis.
	FeedCacheTTL time.Duration `koanf:"feed_cache_ttl"`
	// DormancyWhiteUsers are never flagged as dormant.
	DormancyWhiteUsers []string `koanf:"dormancy_white_users"`
}

// ProfileCacheTTL is the default lifetime of cached directory profiles.
var ProfileCacheTTL = 5 * time.Minute

// Defaults returns the configuration used before file and env overrides.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "json"},
		Server: Server{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			NotifyTopic: "bulwark.notifications",
			ClientID:    "bulwark",
		},
		Identity: IdentityConfig{
			RequestTimeout:   5 * time.Second,
			RequestsPerSec:   20,
			Burst:            20,
			BreakerFailures:  5,
			BreakerCooldown:  30 * time.Second,
			CacheCapacity:    4096,
			CacheTTL:         ProfileCacheTTL,
			RedisCacheTTL:    24 * time.Hour,
			EmailBatchSize:   50,
			EmployedCacheTTL: time.Hour,
		},
		Audit: AuditConfig{
			SelfOperatedHostTags: []string{"ads-mine"},
			HTTPSHost:            "https://bulwark.example.com/",
			TicketURL:            "https://tickets.example.com/link/{ticket_id}",
			PreheatConcurrency:   5,
			DormancyDays:         45,
			FeedCacheTTL:         24 * time.Hour,
		},
		Notify: NotifyConfig{
			RelayInterval:   10 * time.Second,
			RelayBatch:      100,
			MaxAttempts:     1,
			TicketMarkerTTL: 190 * 24 * time.Hour,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// BULWARK_* environment variables, in that order of precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := os.Getenv(envPrefix + "CONFIG")
	if path == "" {
		path = "configs/bulwark.yaml"
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	// BULWARK_AUDIT__HTTPS_HOST -> audit.https_host
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
