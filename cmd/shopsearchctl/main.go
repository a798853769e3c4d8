package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/config"
	dbRedis "github.com/kailas-cloud/shopsearch/internal/db/redis"
	"github.com/kailas-cloud/shopsearch/internal/domain"
	logpkg "github.com/kailas-cloud/shopsearch/internal/logger"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogfile"
	"github.com/kailas-cloud/shopsearch/internal/repository/catalogkv"
	cataloguc "github.com/kailas-cloud/shopsearch/internal/usecase/catalog"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
	"github.com/kailas-cloud/shopsearch/internal/version"
)

const loggerKey = "logger"

func main() {
	_ = config.LoadDotEnv()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "catalog",
		Aliases:  []string{"c"},
		Usage:    "Path to the JSON product catalog",
		EnvVars:  []string{"SHOPSEARCH_CATALOG"},
		Required: true,
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "shopsearchctl",
		Usage:   "Query and load shopsearch product catalogs",
		Version: version.String(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a smart search against a catalog file",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					catalogFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the raw JSON results instead of the rendered list",
					},
				},
			},
			{
				Name:   "products",
				Usage:  "List catalog products",
				Action: productsCommand,
				Flags: []cli.Flag{
					catalogFlag(),
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only show products whose category equals this value",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Load a catalog file into Redis or Valkey",
				Action: importCommand,
				Flags: []cli.Flag{
					catalogFlag(),
					&cli.StringSliceFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Redis/Valkey address (host:port), repeatable",
						EnvVars: []string{"SHOPSEARCH_DB_ADDR"},
						Value:   cli.NewStringSlice("localhost:6379"),
					},
					&cli.StringFlag{
						Name:    "password",
						Usage:   "Redis/Valkey password",
						EnvVars: []string{"SHOPSEARCH_DB_PASSWORD"},
					},
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Key prefix for stored products",
						Value: domain.KeyPrefix,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "How long to wait for the database to become ready",
						Value: 10 * time.Second,
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	logger, err := logpkg.NewLogger("local", logpkg.Options{Level: c.String("log-level")})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[loggerKey] = logger
	return nil
}

func loggerFrom(c *cli.Context) *zap.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}

	products, err := catalogfile.New(c.String("catalog"), loggerFrom(c)).List(c.Context)
	if err != nil {
		return err
	}

	out := searchuc.NewEngine().Search(query, products)
	if c.Bool("json") {
		return writeJSON(c.App.Writer, out)
	}
	renderSearch(c.App.Writer, query, out)
	return nil
}

func productsCommand(c *cli.Context) error {
	svc := cataloguc.New(catalogfile.New(c.String("catalog"), loggerFrom(c)))

	products, err := svc.List(c.Context, c.String("category"))
	if err != nil {
		return err
	}
	renderProducts(c.App.Writer, products)
	return nil
}

func importCommand(c *cli.Context) error {
	logger := loggerFrom(c)

	products, err := catalogfile.New(c.String("catalog"), logger).List(c.Context)
	if err != nil {
		return err
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    c.StringSlice("addr"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer store.Close()

	if err := store.WaitForReady(c.Context, c.Duration("timeout")); err != nil {
		return err
	}

	if err := catalogkv.New(store, c.String("prefix")).Replace(c.Context, products); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	logger.Info("catalog imported",
		zap.Int("products", len(products)),
		zap.Strings("addrs", c.StringSlice("addr")),
	)
	fmt.Fprintf(c.App.Writer, "Imported %d products into %s\n", len(products), strings.Join(c.StringSlice("addr"), ","))
	return nil
}
