// Package main provides a CLI that runs one paginated query.
// Usage: pagequery [flags] "SQL" [args...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"pagequery/internal/common/pagination"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/infra/db"
	"pagequery/internal/observability/logging"
	"pagequery/internal/pkg/config"
	"pagequery/internal/resilience/circuitbreaker"
	"pagequery/internal/resilience/retry"
	"pagequery/internal/sqlparam"
	"pagequery/internal/usecase/pagequery"
)

const usage = `Usage: pagequery [flags] "SQL" [args...]

Examples:
  pagequery --seed "SELECT id, name FROM players WHERE points > ? ORDER BY points DESC" 500
  pagequery --seed --strategy single-pass --offset 5 --size 5 "SELECT name FROM players ORDER BY id"
  pagequery --driver mysql --dsn 'app:secret@tcp(localhost:3306)/stats' --output json "SELECT * FROM players"
  pagequery --file query.yaml

Flags:
`

// options holds parsed command-line flags.
type options struct {
	driver    string
	dsn       string
	strategy  string
	output    string
	file      string
	offset    int
	size      int
	page      int
	seed      bool
	countOnly bool
	timeout   time.Duration

	query string
	args  []string
	set   map[string]bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, config.LoadEnvString("LOG_FORMAT", "text"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := config.NewConfigMetrics("pagequery", prometheus.DefaultRegisterer)
	if err := run(ctx, opts, metrics, logger, os.Stdout); err != nil {
		logger.Error("query failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(argv []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pagequery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.driver, "driver", "", "Database driver: sqlite or mysql (default from DB_DRIVER)")
	fs.StringVar(&opts.dsn, "dsn", "", "Data source name (default from DATABASE_URL)")
	fs.StringVar(&opts.strategy, "strategy", "", "Pagination strategy: two-call or single-pass (default from PAGINATION_STRATEGY)")
	fs.StringVar(&opts.output, "output", "text", "Output format: text or json")
	fs.StringVar(&opts.file, "file", "", "YAML file with query, args, offset, size and strategy")
	fs.IntVar(&opts.offset, "offset", 0, "Zero-based index of the first row")
	fs.IntVar(&opts.size, "size", 0, "Rows per page (default from PAGINATION_DEFAULT_SIZE)")
	fs.IntVar(&opts.page, "page", 0, "1-based page number; overrides --offset")
	fs.BoolVar(&opts.seed, "seed", false, "Create and seed the demo schema (teams, players) first")
	fs.BoolVar(&opts.countOnly, "count", false, "Print only the derived row count")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Overall query timeout")

	if err := fs.Parse(argv); err != nil {
		return options{}, err
	}

	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	rest := fs.Args()
	if len(rest) > 0 {
		opts.query, opts.args = rest[0], rest[1:]
	}
	if opts.query == "" && opts.file == "" {
		fs.Usage()
		return options{}, errors.New("SQL query or --file is required")
	}
	if opts.output != "text" && opts.output != "json" {
		return options{}, fmt.Errorf("invalid --output %q: must be text or json", opts.output)
	}
	return opts, nil
}

// request resolves the query, parameters and configuration from environment,
// query file and flags, in increasing order of precedence.
type request struct {
	query  string
	params sqlparam.List
	page   pagination.Request
	pcfg   pagination.Config
	dbCfg  db.Config
}

func resolve(opts options, metrics *config.ConfigMetrics, logger *slog.Logger) (request, error) {
	dbCfg, dbWarnings := db.LoadConfigFromEnv(metrics)
	pcfg, pWarnings := pagination.LoadFromEnv(metrics)
	for _, w := range append(dbWarnings, pWarnings...) {
		logger.Warn("configuration fallback", slog.String("warning", w))
	}

	var r request
	offset, size := opts.offset, opts.size
	strategy := ""

	if opts.file != "" {
		qf, err := loadQueryFile(opts.file)
		if err != nil {
			return request{}, err
		}
		r.query = qf.Query
		if r.params, err = qf.Params(); err != nil {
			return request{}, fmt.Errorf("query file args: %w", err)
		}
		if qf.Offset != nil && !opts.set["offset"] {
			offset = *qf.Offset
		}
		if qf.Size != nil && !opts.set["size"] {
			size = *qf.Size
		}
		strategy = qf.Strategy
		if qf.Driver != "" {
			dbCfg.Driver = qf.Driver
		}
		if qf.DSN != "" {
			dbCfg.DSN = qf.DSN
		}
	}

	if opts.query != "" {
		params, err := parseArgs(opts.args)
		if err != nil {
			return request{}, err
		}
		r.query, r.params = opts.query, params
	}
	if opts.strategy != "" {
		strategy = opts.strategy
	}
	if strategy != "" {
		s, err := pagination.ParseStrategy(strategy)
		if err != nil {
			return request{}, err
		}
		pcfg.Strategy = s
	}
	if opts.driver != "" {
		dbCfg.Driver = opts.driver
	}
	if opts.dsn != "" {
		dbCfg.DSN = opts.dsn
	}

	if size <= 0 {
		size = pcfg.DefaultSize
	}
	r.page = pagination.NewRequest(offset, size)
	if opts.page > 0 {
		r.page = pagination.RequestFromPage(opts.page, size)
	}
	r.pcfg, r.dbCfg = pcfg, dbCfg
	return r, nil
}

func run(ctx context.Context, opts options, metrics *config.ConfigMetrics, logger *slog.Logger, stdout io.Writer) error {
	r, err := resolve(opts, metrics, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	conn, err := db.Open(ctx, r.dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if opts.seed {
		if err := db.MigrateUp(ctx, conn); err != nil {
			return err
		}
		if err := db.Seed(ctx, conn); err != nil {
			return err
		}
	}

	storeOpts := []sqlstore.Option{
		sqlstore.WithLogger(logger),
		sqlstore.WithRateLimit(r.dbCfg.QueryRateLimit, max(1, int(r.dbCfg.QueryRateLimit))),
	}
	if r.dbCfg.RetryEnabled {
		storeOpts = append(storeOpts, sqlstore.WithRetry(retry.DBConfig()))
	}
	store := sqlstore.New(circuitbreaker.NewDBCircuitBreaker(conn), storeOpts...)

	engine, err := pagequery.NewEngine(store, r.pcfg, pagequery.WithLogger(logger))
	if err != nil {
		return err
	}

	if opts.countOnly {
		n, err := engine.Count(ctx, r.query, r.params)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, n)
		return err
	}

	res, err := pagequery.Paginate(ctx, engine, r.query, r.params, r.page, mapValues)
	if err != nil {
		return err
	}

	out := newOutput(engine.Strategy(), r.page, res)
	if opts.output == "json" {
		return writeJSON(stdout, out)
	}
	return writeText(stdout, out)
}
