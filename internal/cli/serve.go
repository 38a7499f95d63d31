package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mindtree/pkg/observability"
	"github.com/matzehuels/mindtree/pkg/server"
	"github.com/matzehuels/mindtree/pkg/storage"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		backend string
		noCache bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render pipeline over HTTP",
		Long: `Serve the layout and render pipeline over HTTP.

Layouts and artifacts are cached with the configured cache backend. Stored
layouts (/v1/layouts) live in memory, in a directory or in MongoDB,
depending on --store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *c.config()
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("store") {
				cfg.Storage.Backend = backend
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), &cfg, noCache, trace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&backend, "store", storeMemory, "layout storage: memory, file or mongo")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&trace, "trace", false, "log pipeline, cache and request hooks at debug level")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *Config, noCache, trace bool) error {
	logger := loggerFromContext(ctx)
	if trace {
		observability.NewLogHooks(logger).Install()
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	defaults := cfg.PipelineOptions()
	srv := server.New(runner, store, logger, cfg.ServerConfig(defaults))

	printKeyValue("listen", StyleLink.Render(listenURL(cfg.Server.Addr)))
	printKeyValue("cache", cacheLabel(cfg.Cache, noCache))
	printKeyValue("storage", cfg.Storage.Backend)
	printNewline()

	return srv.ListenAndServe(ctx)
}

// openStore opens the configured layout store.
func openStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case storeFile:
		dir := cfg.Dir
		if dir == "" {
			d, err := dataDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(d, "layouts")
		}
		return storage.NewFileStore(dir)
	case storeMongo:
		return storage.NewMongoStore(ctx, storage.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return storage.NewMemoryStore(), nil
	}
}

func cacheLabel(cfg CacheConfig, noCache bool) string {
	if noCache {
		return cacheNone
	}
	return cfg.Backend
}

func listenURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
