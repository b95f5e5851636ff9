// Package config loads imser settings from a YAML file with IMSER_*
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Index    IndexConfig    `yaml:"index"`
	Logging  LoggingConfig  `yaml:"logging"`
	MySQL    MySQLConfig    `yaml:"mysql"`
}

// AnalyzerConfig selects the tokenizer and the filters around it. The same
// analyzer is used for indexing and for queries.
type AnalyzerConfig struct {
	Tokenizer   string            `yaml:"tokenizer"`
	Normalize   bool              `yaml:"normalize"`
	Mappings    map[string]string `yaml:"mappings"`
	Lowercase   bool              `yaml:"lowercase"`
	StopWords   []string          `yaml:"stopWords"`
	Stemming    bool              `yaml:"stemming"`
	ReadingForm string            `yaml:"readingForm"` // "", "kana", "romaji"
}

type IndexConfig struct {
	PunctuationPositions bool `yaml:"punctuationPositions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MySQLConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			Tokenizer: "whitespace",
		},
		Index: IndexConfig{
			PunctuationPositions: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		MySQL: MySQLConfig{
			User:     "root",
			Password: "",
			Addr:     "127.0.0.1",
			Port:     "3306",
			DB:       "imser",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IMSER_TOKENIZER"); v != "" {
		cfg.Analyzer.Tokenizer = v
	}
	if v := os.Getenv("IMSER_LOWERCASE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Analyzer.Lowercase = b
		}
	}
	if v := os.Getenv("IMSER_STOP_WORDS"); v != "" {
		cfg.Analyzer.StopWords = strings.Split(v, ",")
	}
	if v := os.Getenv("IMSER_PUNCTUATION_POSITIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Index.PunctuationPositions = b
		}
	}
	if v := os.Getenv("IMSER_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("IMSER_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("IMSER_MYSQL_USER"); v != "" {
		cfg.MySQL.User = v
	}
	if v := os.Getenv("IMSER_MYSQL_PASSWORD"); v != "" {
		cfg.MySQL.Password = v
	}
	if v := os.Getenv("IMSER_MYSQL_ADDR"); v != "" {
		cfg.MySQL.Addr = v
	}
	if v := os.Getenv("IMSER_MYSQL_PORT"); v != "" {
		cfg.MySQL.Port = v
	}
	if v := os.Getenv("IMSER_MYSQL_DB"); v != "" {
		cfg.MySQL.DB = v
	}
}
