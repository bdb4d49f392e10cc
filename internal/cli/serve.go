package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planboard/planboard/pkg/api"
	"github.com/planboard/planboard/pkg/cache"
	"github.com/planboard/planboard/pkg/pipeline"
	"github.com/planboard/planboard/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	mongoURI  string // MongoDB connection string; empty selects the in-memory store
	mongoDB   string // MongoDB database name
	redisAddr string // Redis address; empty selects the file cache
	noCache   bool   // disable caching entirely
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Planboard HTTP API",
		Long: `Run the Planboard HTTP API.

The server exposes stateless layout computation plus mission storage with
rendered views. Missions are kept in memory unless --mongo-uri points at a
MongoDB deployment. The layout cache defaults to the local file cache; pass
--redis-addr to share it between instances, or --no-cache to disable it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string (default: in-memory store)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "", "MongoDB database name")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for a shared cache (default: file cache)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the store, cache, and runner together and serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	prog := newProgress(c.Logger)

	st, storeKind, err := newStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("open %s store: %w", storeKind, err)
	}
	defer st.Close(ctx)

	cc, cacheKind, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("open %s cache: %w", cacheKind, err)
	}
	prog.done(fmt.Sprintf("Connected %s store, %s cache", storeKind, cacheKind))

	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(api.Config{Addr: opts.addr}, st, runner, c.Logger)

	printNewline()
	fmt.Println(StyleTitle.Render("Planboard API"))
	printKeyValue("Address", StyleLink.Render(serveURL(opts.addr)))
	printKeyValue("Store", storeKind)
	printKeyValue("Cache", cacheKind)
	printNewline()

	return srv.Start(ctx)
}

// newStore opens the mission store selected by flags.
func newStore(ctx context.Context, opts serveOpts) (store.Store, string, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), "memory", nil
	}
	st, err := store.NewMongoStore(ctx, store.MongoConfig{
		URI:      opts.mongoURI,
		Database: opts.mongoDB,
	})
	if err != nil {
		return nil, "mongo", err
	}
	return st, "mongo", nil
}

// newServeCache opens the layout cache selected by flags.
func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, string, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), "disabled", nil
	case opts.redisAddr != "":
		cc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
		return cc, "redis", err
	default:
		cc, err := newCache(false)
		return cc, "file", err
	}
}

// serveURL renders a clickable URL for the listen address.
func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
