package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	AppDirName        = "esh"
)

type Configuration struct {
	configurationDir string

	// Prompt is a template, see default/config.yaml for the placeholders.
	Prompt        string `json:"prompt"`
	HistoryFile   string `json:"history_file"`
	HistoryLimit  int    `json:"history_limit" validate:"gte=0"`
	Color         string `json:"color" validate:"oneof=always auto never"`
	PipelineShell string `json:"pipeline_shell"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Dir is the directory the configuration was loaded from, empty for the
// built in defaults.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// HistoryPath returns the path of the history file or an empty string if
// history isn't persisted.
func (c *Configuration) HistoryPath() string {
	switch {
	case c.HistoryFile == "":
		return ""
	case filepath.IsAbs(c.HistoryFile):
		return c.HistoryFile
	case c.configurationDir == "":
		return ""
	default:
		return filepath.Join(c.configurationDir, c.HistoryFile)
	}
}

// Default returns the built in configuration, it isn't backed by a
// directory so history is kept in memory.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
