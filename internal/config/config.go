package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFileName = "shutter.yaml"

// Camera modes for the terminal host.
const (
	CameraUnavailable = "unavailable"
	CameraSynthetic   = "synthetic"
)

type Config struct {
	Log  LogConfig  `yaml:"log"`
	Host HostConfig `yaml:"host"`

	// Source is the file the config was read from, or "defaults".
	Source string `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type HostConfig struct {
	// Manifest is the YAML file holding the app's usage disclosures.
	Manifest             string `yaml:"manifest"`
	LibraryDir           string `yaml:"library_dir"`
	LibraryAuthorization string `yaml:"library_authorization"`
	Camera               string `yaml:"camera"`
	CameraWidth          int    `yaml:"camera_width"`
	CameraHeight         int    `yaml:"camera_height"`
	TempDir              string `yaml:"temp_dir"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Host: HostConfig{
			Manifest:             "shutter.manifest.yaml",
			LibraryDir:           ".",
			LibraryAuthorization: "authorized",
			Camera:               CameraUnavailable,
			CameraWidth:          1280,
			CameraHeight:         960,
		},
		Source: "defaults",
	}
}

// LookupEnvFunc lets tests replace os.LookupEnv.
type LookupEnvFunc func(string) (string, bool)

// Load reads path over the defaults, then applies SHUTTER_* overrides. A
// missing file at the default name is not an error.
func Load(path string, lookup LookupEnvFunc) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Source = path
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, err
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup LookupEnvFunc) error {
	strs := map[string]*string{
		"SHUTTER_LOG_LEVEL":             &c.Log.Level,
		"SHUTTER_MANIFEST":              &c.Host.Manifest,
		"SHUTTER_LIBRARY_DIR":           &c.Host.LibraryDir,
		"SHUTTER_LIBRARY_AUTHORIZATION": &c.Host.LibraryAuthorization,
		"SHUTTER_CAMERA":                &c.Host.Camera,
		"SHUTTER_TEMP_DIR":              &c.Host.TempDir,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"SHUTTER_CAMERA_WIDTH":  &c.Host.CameraWidth,
		"SHUTTER_CAMERA_HEIGHT": &c.Host.CameraHeight,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := NormalizeLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Host.Camera) {
	case CameraUnavailable, CameraSynthetic:
	default:
		return fmt.Errorf("host.camera must be %q or %q, got %q", CameraUnavailable, CameraSynthetic, c.Host.Camera)
	}
	if _, ok := ParseAuthorization(c.Host.LibraryAuthorization); !ok {
		return fmt.Errorf("unknown host.library_authorization %q", c.Host.LibraryAuthorization)
	}
	if c.Host.CameraWidth <= 0 || c.Host.CameraHeight <= 0 {
		return fmt.Errorf("camera frame must be positive, got %dx%d", c.Host.CameraWidth, c.Host.CameraHeight)
	}
	return nil
}

func NormalizeLogLevel(level string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error":
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", level)
	}
}

// ParseAuthorization normalises the spellings accepted for
// host.library_authorization. The canonical names match the platform's
// status names.
func ParseAuthorization(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "authorized", "granted", "allow", "yes", "true":
		return "authorized", true
	case "limited":
		return "limited", true
	case "denied", "no", "false", "blocked":
		return "denied", true
	case "restricted":
		return "restricted", true
	case "", "notdetermined", "not-determined", "prompt", "ask":
		return "notDetermined", true
	default:
		return "", false
	}
}
