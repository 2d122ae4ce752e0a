package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or a bare
// number of seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

func (d *durationSeconds) SetValue(data string) error {
	v, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	// Bare number first, so "10s" never goes to ParseInt.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

// Config is shared by both binaries; each reads the sections it needs.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Blog  BlogConfig
	Todo  TodoConfig
	Redis RedisConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`

	ReadTimeout  durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// BlogConfig points at the two blog snapshot documents.
type BlogConfig struct {
	UsersPath string `env:"BLOG_USERS_PATH" env-default:"snapshots/users.json"`
	PostsPath string `env:"BLOG_POSTS_PATH" env-default:"snapshots/posts.json"`
}

// TodoConfig points at the lists snapshot document.
type TodoConfig struct {
	ListsPath string `env:"TODO_LISTS_PATH" env-default:"snapshots/lists.json"`
}

// RedisConfig is optional: with neither Addr nor URL set, the todo search
// cache is disabled and the service runs purely in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:""`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	// URL overrides Addr/Password/DB if set, e.g. redis://default:pw@host:6379/0
	URL string `env:"REDIS_URL" env-default:""`

	DefaultTTL durationSeconds `env:"REDIS_DEFAULT_TTL" env-default:"60"`
}

// Enabled reports whether a Redis endpoint is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.Redis.URL != "" {
		addr, password, db, err := parseRedisURL(cfg.Redis.URL)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_URL: %w", err)
		}
		cfg.Redis.Addr = addr
		cfg.Redis.Password = password
		cfg.Redis.DB = db
	}
	return cfg, nil
}

// parseRedisURL extracts host:port, password and DB from a redis:// or
// rediss:// URL.
func parseRedisURL(s string) (addr, password string, db int, err error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", "", 0, err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return "", "", 0, fmt.Errorf("scheme must be redis or rediss, got %q", u.Scheme)
	}
	addr = u.Host
	if addr == "" {
		return "", "", 0, fmt.Errorf("missing host in Redis URL")
	}
	if u.User != nil {
		password, _ = u.User.Password()
	}
	if u.Path != "" && len(u.Path) > 1 {
		db, _ = strconv.Atoi(strings.TrimPrefix(u.Path, "/"))
	}
	return addr, password, db, nil
}
