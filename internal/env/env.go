package env

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// this is required
var VERSION string

type Config struct {
	Deployment      string        `envconfig:"DEPLOYMENT" default:"dev" yaml:"deployment"`
	Version         string        `ignored:"true" yaml:"version"`
	Prefork         bool          `envconfig:"PREFORK" yaml:"prefork"`
	JWTSecret       string        `envconfig:"JWT_SECRET" yaml:"jwtSecret"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s" yaml:"upstreamTimeout"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s" yaml:"requestTimeout"`
	Logging         Logging       `yaml:"logging"`
	Cache           Cache         `yaml:"cache"`
	Mongo           Mongo         `yaml:"mongo"`
	Travis          Travis        `yaml:"travis"`
	Github          Github        `yaml:"github"`
}

// Logging provides the logging configuration.
type Logging struct {
	Debug  bool `envconfig:"DEBUG" yaml:"debug"`
	Trace  bool `envconfig:"TRACE" yaml:"trace"`
	Color  bool `envconfig:"LOGS_COLOR" yaml:"color"`
	Pretty bool `envconfig:"LOGS_PRETTY" yaml:"pretty"`
	Text   bool `envconfig:"LOGS_TEXT" yaml:"text"`
}

type Cache struct {
	Driver        string        `envconfig:"CACHE_DRIVER" default:"memory" yaml:"driver"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379" yaml:"redisAddr"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" yaml:"redisPassword"`
	RedisDB       int           `envconfig:"REDIS_DB" yaml:"redisDB"`
	TTL           time.Duration `envconfig:"CACHE_TTL" yaml:"ttl"`
}

type Mongo struct {
	URI      string `envconfig:"MONGO_URI" yaml:"uri"`
	Database string `envconfig:"MONGO_DATABASE" default:"badgeofshame" yaml:"database"`
}

type Travis struct {
	APIURL string `envconfig:"TRAVIS_API_URL" default:"https://api.travis-ci.org" yaml:"apiURL"`
}

type Github struct {
	APIURL string `envconfig:"GITHUB_API_URL" default:"https://api.github.com/" yaml:"apiURL"`
	Token  string `envconfig:"GITHUB_TOKEN" yaml:"token"`
}

// Init loads <envRoot>/.env on top of the process environment and returns
// the resulting configuration.
func Init(envRoot string, appVersion string) (*Config, error) {
	loadEnv(envRoot)
	loadVersion(appVersion)

	return Environ()
}

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	c.Deployment = strings.TrimSpace(c.Deployment)
	if c.Deployment == "" {
		c.Deployment = "dev"
	}
	c.Cache.Driver = strings.ToLower(strings.TrimSpace(c.Cache.Driver))
	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Version == "" {
		c.Version = VERSION
	}
	if c.Version == "" {
		c.Version = "unknown"
	}
}

// String returns the configuration in string format, secrets redacted.
func (c *Config) String() string {
	redacted := *c
	redacted.JWTSecret = redact(redacted.JWTSecret)
	redacted.Cache.RedisPassword = redact(redacted.Cache.RedisPassword)
	redacted.Github.Token = redact(redacted.Github.Token)
	redacted.Mongo.URI = redact(redacted.Mongo.URI)

	out, _ := yaml.Marshal(redacted)
	return string(out)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

func loadEnv(envRoot string) {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Overload(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("could not load %s, relying on env vars", path)
			return
		}
		logrus.Fatalf("failed to load env file %s: %v", path, err)
	}
}

func loadVersion(appVersion string) {
	if appVersion != "" {
		VERSION = appVersion
		return
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		logrus.Warnf("failed to read version file from repo root: %v", err)
		VERSION = "unknown"
		return
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed != "" {
		VERSION = trimmed
	} else {
		VERSION = "unknown"
	}
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
