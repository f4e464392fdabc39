package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env     string        `yaml:"env"`
	Server  ServerConfig  `yaml:"http_server"`
	Pg      PgConfig      `yaml:"postgres"`
	Service ServiceConfig `yaml:"service"`
	Scanner ScannerConfig `yaml:"scanner"`
}

type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Timeout     time.Duration `yaml:"timeout"`
	CORSOrigins []string      `yaml:"cors_origins"`
}

type PgConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Db       string `yaml:"db"`
}

// ServiceConfig fixes domain-level settings that must not depend on the host
// environment, most importantly the zone in which "today" is computed.
type ServiceConfig struct {
	// TimeZone - IANA name, e.g. "Asia/Seoul"; empty means UTC
	TimeZone string `yaml:"time_zone"`
}

// ScannerConfig drives the daily upcoming-billing scan.
type ScannerConfig struct {
	// Enabled - start the scanner alongside the HTTP server
	Enabled bool `yaml:"enabled"`
	// RunAt - daily run time as "HH:MM" in the service time zone
	RunAt string `yaml:"run_at"`
	// HorizonDays - scan window length in days
	HorizonDays int `yaml:"horizon_days"`
}

// Location resolves the configured time zone, falling back to UTC.
func (c ServiceConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

// findUp walks from start towards the filesystem root looking for rel.
func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func LoadConfig() *Config {
	var cfg Config
	cwd, _ := os.Getwd()

	// 1) .env
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		if up, ok := findUp(cwd, ".env/local_pg.env", 8); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		_ = godotenv.Overload(envPath)
	}

	// 2) YAML
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if up, ok := findUp(cwd, "configs/local.yaml", 8); ok {
			path = up
		} else {
			log.Fatal("CONFIG_PATH not set and configs/local.yaml not found")
		}
	} else {
		path = resolvePath(cwd, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}

	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &cfg
}
