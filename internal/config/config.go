// config предоставляет структуру конфигурации news-digest
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Fetcher FetcherConfig `yaml:"fetcher"`
	Filter  FilterConfig  `yaml:"filter"`
	Scoring ScoringConfig `yaml:"scoring"`
	Limits  LimitsConfig  `yaml:"limits"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// FetcherConfig — параметры загрузки лент.
type FetcherConfig struct {
	// Список URL лент. Можно задать через ENV FEED_SOURCES, разделитель — запятая.
	Sources       []string      `yaml:"sources"        env:"FEED_SOURCES"         env-separator:"," env-required:"true"`
	Timeout       time.Duration `yaml:"timeout"        env:"FETCH_TIMEOUT"        env-default:"10s"`
	MaxConcurrent int           `yaml:"max_concurrent" env:"FETCH_MAX_CONCURRENT" env-default:"10"`
	UserAgent     string        `yaml:"user_agent"     env:"FETCH_USER_AGENT"     env-default:"news-digest/1.0"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" env:"FETCH_MAX_BODY_BYTES" env-default:"10485760"`
}

// FilterConfig — ключевые фразы фильтра релевантности.
type FilterConfig struct {
	Keywords []string `yaml:"keywords" env:"FILTER_KEYWORDS" env-separator:"," env-required:"true"`
}

// ScoringConfig — параметры скоринга.
type ScoringConfig struct {
	// Фрагменты названий «качественных» источников.
	KnownSources []string `yaml:"known_sources" env:"KNOWN_SOURCES" env-separator:","`
}

// LimitsConfig — ограничения выдачи.
type LimitsConfig struct {
	// Сколько статей попадает в итоговый список.
	Top int `yaml:"top" env:"TOP_LIMIT" env-default:"20"`
	// Максимальная длина summary в символах.
	SummaryChars int `yaml:"summary_chars" env:"SUMMARY_CHARS" env-default:"300"`
}

// OutputConfig — куда отдавать результат.
type OutputConfig struct {
	Path    string `yaml:"path"    env:"OUTPUT_PATH"    env-default:"ai_articles.json"`
	Console bool   `yaml:"console" env:"OUTPUT_CONSOLE" env-default:"true"`
}

// MetricsConfig — выгрузка метрик в textfile для node_exporter.
// Пустой Textfile отключает выгрузку.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" env:"METRICS_TEXTFILE"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch envPath := os.Getenv("CONFIG_PATH"); {
	case path != "":
		c, err = tryRead(path)
	case envPath != "":
		c, err = tryRead(envPath)
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
				return nil, fmt.Errorf("failed to read local.yaml: %w", err)
			}
			c = &cfg
			break
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
		c = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if len(c.Fetcher.Sources) == 0 {
		return fmt.Errorf("fetcher.sources must contain at least one feed")
	}
	if c.Fetcher.Timeout <= 0 {
		return fmt.Errorf("fetcher.timeout must be > 0")
	}
	if c.Fetcher.MaxConcurrent <= 0 {
		return fmt.Errorf("fetcher.max_concurrent must be > 0")
	}
	if c.Fetcher.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetcher.max_body_bytes must be > 0")
	}
	if len(c.Filter.Keywords) == 0 {
		return fmt.Errorf("filter.keywords must contain at least one keyword")
	}
	if c.Limits.Top <= 0 {
		return fmt.Errorf("limits.top must be > 0")
	}
	if c.Limits.SummaryChars <= 0 {
		return fmt.Errorf("limits.summary_chars must be > 0")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	return nil
}
