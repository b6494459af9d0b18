package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Avatars   AvatarConfig    `yaml:"avatars"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	PublicDir         string        `yaml:"public_dir"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RateLimitConfig struct {
	Limit              int           `yaml:"limit"`
	Window             time.Duration `yaml:"window"`
	Backend            string        `yaml:"backend"`
	KeyHeader          string        `yaml:"key_header"`
	TrustXForwardedFor bool          `yaml:"trust_x_forwarded_for"`
	Redis              RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type AvatarConfig struct {
	Backend string    `yaml:"backend"`
	S3      *S3Config `yaml:"s3"`
}

type S3Config struct {
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Region     string `yaml:"region"`
	BucketName string `yaml:"bucket_name"`
	ServiceUrl string `yaml:"service_url"`
	BucketUrl  string `yaml:"bucket_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":3000",
			PublicDir:         "public",
			MaxBodyBytes:      10 << 20,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   30 * time.Second,
		},
		Database: *NewDatabaseConfig(),
		CORS: CORSConfig{
			AllowedOrigins: []string{"https://drstone.id.vn", "http://localhost:5173"},
		},
		RateLimit: RateLimitConfig{
			Limit:   20,
			Window:  time.Minute,
			Backend: "memory",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "contacts:ratelimit:",
			},
		},
		Avatars: AvatarConfig{
			Backend: "local",
			S3: &S3Config{
				Region:     "us-east-1",
				ServiceUrl: "https://s3.amazonaws.com",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the defaults, then the YAML file at path when non-empty, then
// CONTACTS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	str("CONTACTS_ADDR", &c.Server.Addr)
	if port, ok := lookup("PORT"); ok && port != "" {
		c.Server.Addr = ":" + port
	}
	str("CONTACTS_PUBLIC_DIR", &c.Server.PublicDir)
	if v, ok := lookup("CONTACTS_MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("CONTACTS_MAX_BODY_BYTES: %w", err))
		} else {
			c.Server.MaxBodyBytes = n
		}
	}
	dur("CONTACTS_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)

	str("CONTACTS_DB_DRIVER", &c.Database.Driver)
	str("CONTACTS_DB_DSN", &c.Database.DSN)
	str("CONTACTS_DB_SERVER", &c.Database.Server)
	str("CONTACTS_DB_NAME", &c.Database.Database)
	str("CONTACTS_DB_USER", &c.Database.User)
	str("CONTACTS_DB_PASSWORD", &c.Database.Password)

	if v, ok := lookup("CONTACTS_CORS_ORIGINS"); ok {
		c.CORS.AllowedOrigins = splitList(v)
	}

	num("CONTACTS_RATE_LIMIT", &c.RateLimit.Limit)
	dur("CONTACTS_RATE_WINDOW", &c.RateLimit.Window)
	str("CONTACTS_RATE_BACKEND", &c.RateLimit.Backend)
	str("CONTACTS_RATE_KEY_HEADER", &c.RateLimit.KeyHeader)
	if v, ok := lookup("CONTACTS_RATE_TRUST_XFF"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CONTACTS_RATE_TRUST_XFF: %w", err))
		} else {
			c.RateLimit.TrustXForwardedFor = b
		}
	}
	str("CONTACTS_REDIS_ADDR", &c.RateLimit.Redis.Addr)
	str("CONTACTS_REDIS_PASSWORD", &c.RateLimit.Redis.Password)
	num("CONTACTS_REDIS_DB", &c.RateLimit.Redis.DB)

	str("CONTACTS_AVATAR_BACKEND", &c.Avatars.Backend)
	if c.Avatars.S3 == nil {
		c.Avatars.S3 = &S3Config{}
	}
	str("CONTACTS_S3_ACCESS_KEY", &c.Avatars.S3.AccessKey)
	str("CONTACTS_S3_SECRET_KEY", &c.Avatars.S3.SecretKey)
	str("CONTACTS_S3_REGION", &c.Avatars.S3.Region)
	str("CONTACTS_S3_BUCKET", &c.Avatars.S3.BucketName)
	str("CONTACTS_S3_SERVICE_URL", &c.Avatars.S3.ServiceUrl)
	str("CONTACTS_S3_BUCKET_URL", &c.Avatars.S3.BucketUrl)

	str("CONTACTS_LOG_LEVEL", &c.Log.Level)
	str("CONTACTS_LOG_FORMAT", &c.Log.Format)

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Errorf("database.driver must be sqlite or mysql, got %q", c.Database.Driver))
	}
	if c.RateLimit.Limit < 1 {
		errs = append(errs, errors.New("rate_limit.limit must be at least 1"))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate_limit.window must be positive"))
	}
	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("rate_limit.backend must be memory or redis, got %q", c.RateLimit.Backend))
	}
	switch c.Avatars.Backend {
	case "local":
	case "s3":
		if c.Avatars.S3 == nil || c.Avatars.S3.BucketName == "" {
			errs = append(errs, errors.New("avatars.s3.bucket_name is required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("avatars.backend must be local or s3, got %q", c.Avatars.Backend))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}
	return errors.Join(errs...)
}
