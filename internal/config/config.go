// Load envs from .env
// Load YAML config
// Override with environment
// Provide default values (the program runs with no config files at all)

package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Crawl target
	BaseURL  string `yaml:"base_url"`
	JobsPath string `yaml:"jobs_path"`

	// Volume / politeness knobs
	LinkCap       int `yaml:"link_cap"`
	WaitTimeoutMS int `yaml:"wait_timeout_ms"`
	DelayMinMS    int `yaml:"delay_min_ms"`
	DelayMaxMS    int `yaml:"delay_max_ms"`

	// Browser
	ShowBrowser bool   `yaml:"show_browser"`
	CookiesPath string `yaml:"cookies_path"`

	// Output
	OutputDir    string `yaml:"output_dir"`
	OutputPrefix string `yaml:"output_prefix"`

	// Optional run report
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if base := os.Getenv("JOBMAG_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if dir := os.Getenv("JOBMAG_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset field with the built-in constants so the
// binary works without any config file. Telegram fields stay empty unless
// configured; the run reporter is simply disabled then.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.myjobmag.com"
	}
	if c.JobsPath == "" {
		c.JobsPath = "/jobs"
	}
	if c.LinkCap == 0 {
		c.LinkCap = 10
	}
	if c.WaitTimeoutMS == 0 {
		c.WaitTimeoutMS = 30000
	}
	if c.DelayMinMS == 0 {
		c.DelayMinMS = 2000
	}
	if c.DelayMaxMS == 0 {
		c.DelayMaxMS = 4000
	}
	if c.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.OutputDir = filepath.Join(home, "Desktop")
	}
	if c.OutputPrefix == "" {
		c.OutputPrefix = "myjobmag_jobs"
	}
}

// JobsURL is the listing-page address the crawl starts from.
func (c *Config) JobsURL() string {
	return c.BaseURL + c.JobsPath
}

// WaitTimeout is the ceiling for the page-body presence wait.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.WaitTimeoutMS) * time.Millisecond
}
