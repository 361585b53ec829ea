// Package config loads and validates the YAML files that declare
// projects, test cases and default execution parameters.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/probatch/probatch/internal/model"
)

// Config is the top-level file structure.
type Config struct {
	Projects  []model.Project  `yaml:"projects"`
	TestCases []model.TestCase `yaml:"test_cases"`
	Defaults  Defaults         `yaml:"defaults"`
}

// Defaults are the execution parameters applied when flags don't
// override them.
type Defaults struct {
	ConcurrencyLimit int           `yaml:"concurrency_limit"`
	Timeout          time.Duration `yaml:"timeout"`
	RetryCount       int           `yaml:"retry_count"`
	Strategy         string        `yaml:"strategy"`
}

// DefaultDefaults returns the built-in execution parameters.
func DefaultDefaults() Defaults {
	return Defaults{
		ConcurrencyLimit: 10,
		Timeout:          30 * time.Second,
		RetryCount:       0,
		Strategy:         "mixed",
	}
}

// Load reads, env-substitutes and parses a configuration file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration bytes, filling unset defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Defaults: DefaultDefaults()}
	if err := yaml.Unmarshal(expandEnv(data), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	for i := range cfg.TestCases {
		tc := &cfg.TestCases[i]
		if tc.Priority == "" {
			tc.Priority = model.PriorityMedium
		}
		if tc.TestType == "" {
			tc.TestType = model.TestTypeFunctional
		}
		if tc.ExpectedStatus == 0 {
			tc.ExpectedStatus = 200
		}
	}

	return &cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv substitutes ${VAR} references with values from the process
// environment. Unset variables are left as-is.
func expandEnv(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envPattern.FindSubmatch(match)[1]
		if value, ok := os.LookupEnv(string(name)); ok {
			return []byte(value)
		}
		return match
	})
}

// Validate checks the configuration for structural errors and returns
// all of them.
func Validate(cfg *Config) []error {
	var errs []error

	projectIDs := make(map[string]bool)
	for _, p := range cfg.Projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("project %q: id is required", p.Name))
			continue
		}
		if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate project id %q", p.ID))
		}
		projectIDs[p.ID] = true
		if p.BaseURL == "" {
			errs = append(errs, fmt.Errorf("project %q: base_url is required", p.ID))
		}
	}

	caseIDs := make(map[string]bool)
	for _, tc := range cfg.TestCases {
		if tc.ID == "" {
			errs = append(errs, fmt.Errorf("test case %q: id is required", tc.Name))
			continue
		}
		if caseIDs[tc.ID] {
			errs = append(errs, fmt.Errorf("duplicate test case id %q", tc.ID))
		}
		caseIDs[tc.ID] = true

		if err := model.ValidateMethod(tc.Method); err != nil {
			errs = append(errs, fmt.Errorf("test case %q: %w", tc.ID, err))
		}
		if !projectIDs[tc.ProjectID] {
			errs = append(errs, fmt.Errorf("test case %q: unknown project %q", tc.ID, tc.ProjectID))
		}
		if !tc.Priority.Valid() {
			errs = append(errs, fmt.Errorf("test case %q: unknown priority %q", tc.ID, tc.Priority))
		}
		if tc.ExpectedStatus < 100 || tc.ExpectedStatus > 599 {
			errs = append(errs, fmt.Errorf("test case %q: expected_status %d out of range", tc.ID, tc.ExpectedStatus))
		}
	}

	if cfg.Defaults.ConcurrencyLimit < 1 {
		errs = append(errs, fmt.Errorf("defaults: concurrency_limit must be at least 1"))
	}
	if cfg.Defaults.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("defaults: timeout must be positive"))
	}
	if cfg.Defaults.RetryCount < 0 {
		errs = append(errs, fmt.Errorf("defaults: retry_count must not be negative"))
	}

	return errs
}
