package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory
const FileName = "connlint.yml"

type Config struct {
	Roots       []string `yaml:"roots" validate:"min=1,dive,required"`
	PackageDir  string   `yaml:"package_dir" validate:"required"`
	Forbidden   []string `yaml:"forbidden" validate:"min=1,dive,required"`
	FailOnError bool     `yaml:"fail_on_error"`
}

func Default() *Config {
	return &Config{
		Roots: []string{
			"contracts/mainnet/connectors",
			"contracts/polygon/connectors",
		},
		PackageDir: "node_modules",
		Forbidden:  []string{"selfdestruct"},
	}
}

// Load reads, templates and validates the file at path. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	// * read config file
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return nil, fmt.Errorf("error processing templates: %w", err)
	}

	// * parse config over defaults
	config := Default()
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	// * validate config
	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadOptional behaves like Load but returns the defaults when no file exists at path
func LoadOptional(path string) (*Config, error) {
	config, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

func Validate(config *Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(config)
	if err == nil {
		return nil
	}

	var valErr validator.ValidationErrors
	if errors.As(err, &valErr) {
		var lists []string
		for _, e := range valErr {
			lists = append(lists, e.Namespace()+" ("+e.Tag()+")")
		}
		return fmt.Errorf("invalid configuration: validation failed on %s", strings.Join(lists, ", "))
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
