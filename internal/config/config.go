package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/loom-ui/loom/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "loom.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4600

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export output directory.
	DefaultOutput = "dist"
)

// Config represents the complete loom.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Title is the page title for the preview shell.
	Title string `json:"title,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	// Output is the output directory for exports.
	Output string `json:"output,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// S3 contains the optional publish target.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config contains the optional S3 publish target for exports.
type S3Config struct {
	// Bucket is the destination bucket. Publishing is disabled when empty.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix for uploaded objects.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Preview: PreviewConfig{
			Port:  DefaultPort,
			Host:  DefaultHost,
			Watch: []string{"."},
		},
		Export: ExportConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for loom.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E500").
				WithDetail("No loom.json found in " + filepath.Dir(path)).
				WithSuggestion("Create loom.json in the project root")
		}
		return nil, errors.New("E500").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E500").
			WithDetail("Failed to parse loom.json: " + err.Error()).
			WithSuggestion("Check that loom.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E500").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E500").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Watch == nil {
		c.Preview.Watch = []string{"."}
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E501").
			WithDetail("Preview port must be between 0 and 65535")
	}
	if c.Export.S3.Bucket != "" && c.Export.S3.Region == "" {
		return errors.New("E501").
			WithDetail("export.s3.region is required when export.s3.bucket is set")
	}
	return nil
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// OutputPath returns the absolute path to the export output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Export.Output) {
		return c.Export.Output
	}
	return filepath.Join(c.Dir(), c.Export.Output)
}

// HasPublish returns true if an S3 publish target is configured.
func (c *Config) HasPublish() bool {
	return c.Export.S3.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing loom.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E500").
				WithDetail("No loom.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create loom.json in the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
