package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Tables struct {
	Schema     string
	Restaurant string
	MenuItem   string
	Order      string
	OrderItem  string
	Geocode    string
}

type Kafka struct {
	Brokers     []string
	Topic       string
	Group       string
	Workers     int
	Partitions  int
	Replication int
}

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Geocoder struct {
	BaseURL   string
	UserAgent string
	MinDelay  time.Duration
	Timeout   time.Duration
	Breaker   Breaker
	Retry     Retry
}

type Cache struct {
	Cap         int
	NegativeTTL time.Duration
}

type Config struct {
	HTTPAddr     string
	Env          string
	LogLevel     string
	BackfillOnUp bool
	Workers      int

	Cache    Cache
	Pg       Postgres
	Tables   Tables
	Kafka    Kafka
	Breaker  Breaker
	Retry    Retry
	Geocoder Geocoder
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

// LoadE is Load without the fatal, for callers that report errors themselves.
func LoadE() (Config, error) {
	return load()
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr:     envDefault("HTTP_ADDR", ":8081"),
		Env:          envDefault("APP_ENV", "development"),
		LogLevel:     envDefault("LOG_LEVEL", "info"),
		BackfillOnUp: envBool("GEOCODE_BACKFILL_ON_START", false),
		Workers:      envInt("GEOCODE_BACKFILL_WORKERS", 4),

		Cache: Cache{
			Cap:         envInt("CACHE_CAP", 1000),
			NegativeTTL: envDurationMS("CACHE_NEGATIVE_TTL", 0),
		},

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
		},

		Tables: Tables{
			Schema:     envDefault("DB_SCHEMA", "foodcart"),
			Restaurant: envDefault("TBL_RESTAURANT", "restaurant"),
			MenuItem:   envDefault("TBL_MENU_ITEM", "restaurant_menu_item"),
			Order:      envDefault("TBL_ORDER", "order"),
			OrderItem:  envDefault("TBL_ORDER_ITEM", "order_item"),
			Geocode:    envDefault("TBL_GEOCODE", "geocoded_address"),
		},

		Kafka: Kafka{
			Brokers:     splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:       envDefault("KAFKA_TOPIC", "orders"),
			Group:       envDefault("KAFKA_GROUP", "foodcart-intake"),
			Workers:     envInt("KAFKA_WORKERS", 4),
			Partitions:  envInt("KAFKA_PARTITIONS", 3),
			Replication: envInt("KAFKA_REPLICATION", 1),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},

		Geocoder: Geocoder{
			BaseURL:   envDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: envDefault("GEOCODER_USER_AGENT", "foodcart"),
			MinDelay:  envDurationMS("GEOCODER_MIN_DELAY", time.Second),
			Timeout:   envDurationMS("GEOCODER_TIMEOUT", 5*time.Second),
			Breaker: Breaker{
				Threshold:   envUint32("GEOCODER_BREAKER_THRESHOLD", 5),
				OpenTimeout: envDurationMS("GEOCODER_BREAKER_OPENTIMEOUT", 30*time.Second),
				MaxHalfOpen: envUint32("GEOCODER_BREAKER_MAXHALFOPEN", 1),
			},
			Retry: Retry{
				Attempts:     envInt("GEOCODER_RETRY_ATTEMPTS", 2),
				Base:         envDurationMS("GEOCODER_RETRY_BASE", 250*time.Millisecond),
				Max:          envDurationMS("GEOCODER_RETRY_MAX", 2*time.Second),
				JitterFactor: envFloat64("GEOCODER_RETRY_JITTERFACTOR", 0.2),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := map[string]string{
		"PG_HOST":     c.Pg.Host,
		"PG_DB":       c.Pg.DB,
		"PG_USER":     c.Pg.User,
		"PG_PASSWORD": c.Pg.Password,
	}
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(c.Kafka.Brokers) == 0 {
		missing = append(missing, "KAFKA_BROKERS")
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	return nil
}

// normalize clamps values that would otherwise make a component misbehave.
func (c *Config) normalize() {
	if c.Cache.Cap <= 0 {
		log.Printf("CACHE_CAP is %d, adjusting to 1", c.Cache.Cap)
		c.Cache.Cap = 1
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Kafka.Workers <= 0 {
		c.Kafka.Workers = 1
	}
	if c.Geocoder.MinDelay < 0 {
		log.Printf("GEOCODER_MIN_DELAY is %v, adjusting to 0", c.Geocoder.MinDelay)
		c.Geocoder.MinDelay = 0
	}
	c.Retry = normalizeRetry("RETRY", c.Retry)
	c.Geocoder.Retry = normalizeRetry("GEOCODER_RETRY", c.Geocoder.Retry)
}

func normalizeRetry(prefix string, r Retry) Retry {
	if r.Attempts < 1 {
		log.Printf("%s_ATTEMPTS is %d, adjusting to 1", prefix, r.Attempts)
		r.Attempts = 1
	}
	if r.Base <= 0 {
		log.Printf("%s_BASE is %v, adjusting to 100ms", prefix, r.Base)
		r.Base = 100 * time.Millisecond
	}
	if r.Max < r.Base {
		log.Printf("%s_MAX (%v) < %s_BASE (%v), adjusting max to base", prefix, r.Max, prefix, r.Base)
		r.Max = r.Base
	}
	return r
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
