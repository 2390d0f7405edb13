package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Path is the location of the YAML config file. A missing file leaves
// the defaults in place.
type Path string

const DefaultPath Path = "./config/config.yaml"

type Config struct {
	Server   Server   `yaml:"server"`
	API      API      `yaml:"api"`
	Session  Session  `yaml:"session"`
	WhatsApp WhatsApp `yaml:"whatsapp"`
	Log      Log      `yaml:"log"`

	// Routes replaces the built-in route classification table when set.
	Routes []Route `yaml:"routes" validate:"dive"`
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type API struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
}

type Session struct {
	CookieTTLDays int           `yaml:"cookie_ttl_days" validate:"min=1"`
	Lifetime      time.Duration `yaml:"lifetime" validate:"min=0"`
	SecureCookies bool          `yaml:"secure_cookies"`
}

type WhatsApp struct {
	Number string `yaml:"number" validate:"required,numeric"`
}

type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

type Route struct {
	Pattern        string `yaml:"pattern" validate:"required,startswith=/"`
	Match          string `yaml:"match" validate:"required,oneof=prefix exact"`
	Classification string `yaml:"classification" validate:"required,oneof=public protected protected-admin auth-entry"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Host: "localhost",
			Port: 8123,
		},
		API: API{
			BaseURL: "http://localhost:3001/api",
			Timeout: 10 * time.Second,
		},
		Session: Session{
			CookieTTLDays: 7,
			Lifetime:      30 * 24 * time.Hour,
		},
		WhatsApp: WhatsApp{
			Number: "6285156465400",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// New builds the config from defaults, the YAML file at p and the
// environment, in that order.
func New(p Path) (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	c := Default()
	if err := c.readFile(string(p)); err != nil {
		return nil, err
	}

	if err := c.readEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) readFile(path string) error {
	if path == "" {
		return nil
	}

	filename, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	return nil
}

func (c *Config) readEnv() error {
	if v, ok := os.LookupEnv("PORTAL_API_URL"); ok && v != "" {
		c.API.BaseURL = v
	}

	if v, ok := os.LookupEnv("PORTAL_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORTAL_PORT: %w", err)
		}
		c.Server.Port = port
	}

	if v, ok := os.LookupEnv("PORTAL_SECURE_COOKIES"); ok && v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PORTAL_SECURE_COOKIES: %w", err)
		}
		c.Session.SecureCookies = secure
	}

	if v, ok := os.LookupEnv("PORTAL_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}

	return nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
