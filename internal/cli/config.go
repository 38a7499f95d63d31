package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindtree/pkg/document"
	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/pipeline"
	"github.com/matzehuels/mindtree/pkg/server"
)

// Cache backends.
const (
	cacheFile  = "file"
	cacheRedis = "redis"
	cacheNone  = "none"
)

// Storage backends for the HTTP server.
const (
	storeMemory = "memory"
	storeFile   = "file"
	storeMongo  = "mongo"
)

// Config is the user configuration file. Every field is optional; command
// line flags take precedence.
type Config struct {
	Layout  LayoutConfig        `toml:"layout"`
	Style   *document.StyleSpec `toml:"style,omitempty"`
	Render  RenderConfig        `toml:"render"`
	Cache   CacheConfig         `toml:"cache"`
	Server  ServerConfig        `toml:"server"`
	Storage StorageConfig       `toml:"storage"`
}

type LayoutConfig struct {
	Engine   string   `toml:"engine,omitempty"`
	Margin   *float64 `toml:"margin,omitempty"`
	MaxDepth int      `toml:"max_depth,omitempty"`
	MaxNodes int      `toml:"max_nodes,omitempty"`
}

type RenderConfig struct {
	Formats   []string `toml:"formats,omitempty"`
	Theme     string   `toml:"theme,omitempty"`
	Connector string   `toml:"connector,omitempty"`
	Renderer  string   `toml:"renderer,omitempty"`
	Scale     float64  `toml:"scale,omitempty"`
	EmbedFont bool     `toml:"embed_font,omitempty"`
}

type CacheConfig struct {
	Backend     string `toml:"backend"`
	Dir         string `toml:"dir,omitempty"`
	RedisURL    string `toml:"redis_url,omitempty"`
	RedisPrefix string `toml:"redis_prefix,omitempty"`
}

type ServerConfig struct {
	Addr           string   `toml:"addr"`
	MaxBodyBytes   int64    `toml:"max_body_bytes,omitempty"`
	RequestTimeout duration `toml:"request_timeout,omitempty"`
}

type StorageConfig struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir,omitempty"`
	MongoURI        string `toml:"mongo_uri,omitempty"`
	MongoDatabase   string `toml:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection,omitempty"`
}

// duration reads and writes time.Duration as "30s" style strings.
type duration time.Duration

func (d duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Cache:   CacheConfig{Backend: cacheFile},
		Server:  ServerConfig{Addr: server.DefaultAddr},
		Storage: StorageConfig{Backend: storeMemory},
	}
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the backend names. Pipeline settings are validated when
// they are used.
func (c *Config) Validate() error {
	if !slices.Contains([]string{cacheFile, cacheRedis, cacheNone}, c.Cache.Backend) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown cache backend %q (use file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == cacheRedis && c.Cache.RedisURL == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
	}
	if !slices.Contains([]string{storeMemory, storeFile, storeMongo}, c.Storage.Backend) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown storage backend %q (use memory, file or mongo)", c.Storage.Backend)
	}
	if c.Storage.Backend == storeMongo && c.Storage.MongoURI == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "storage.mongo_uri is required for the mongo backend")
	}
	return nil
}

// PipelineOptions converts the layout, style and render sections.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Style:     c.Style,
		MaxDepth:  c.Layout.MaxDepth,
		MaxNodes:  c.Layout.MaxNodes,
		Engine:    c.Layout.Engine,
		Margin:    c.Layout.Margin,
		Formats:   slices.Clone(c.Render.Formats),
		Theme:     c.Render.Theme,
		Connector: c.Render.Connector,
		Renderer:  c.Render.Renderer,
		Scale:     c.Render.Scale,
		EmbedFont: c.Render.EmbedFont,
	}
}

// ServerConfig converts the server section. defaults become the
// per-request pipeline defaults.
func (c *Config) ServerConfig(defaults pipeline.Options) server.Config {
	return server.Config{
		Addr:           c.Server.Addr,
		MaxBodyBytes:   c.Server.MaxBodyBytes,
		RequestTimeout: time.Duration(c.Server.RequestTimeout),
		Defaults:       defaults,
	}
}

// Write encodes the config as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// =============================================================================
// config command
// =============================================================================

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), c.configPath())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.config().Write(cmd.OutOrStdout())
			},
		},
		c.configInitCommand(),
	)
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if path == "" {
				return apperrors.New(apperrors.ErrCodeInvalidPath, "cannot determine config path; use --config")
			}
			if _, err := os.Stat(path); err == nil && !force {
				printWarning("Config already exists (use --force to overwrite)")
				printFile(path)
				return nil
			}
			if err := writeConfigFile(path, DefaultConfig()); err != nil {
				return err
			}
			printSuccess("Wrote config")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func writeConfigFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := cfg.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
