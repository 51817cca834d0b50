package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"cold_load_calc/internal/batch"
	"cold_load_calc/internal/config"
	"cold_load_calc/internal/report"
	"cold_load_calc/internal/server"
	"cold_load_calc/load"
)

// caseFile is one calculation case as stored in a JSON file.
type caseFile struct {
	Name       string               `json:"name"`
	Room       load.RoomInput       `json:"room"`
	Conditions load.ConditionsInput `json:"conditions"`
	Product    load.ProductInput    `json:"product"`
}

type caseOutput struct {
	Name     string           `json:"name"`
	Result   *load.LoadResult `json:"result,omitempty"`
	Warnings []load.Violation `json:"warnings,omitempty"`
	Error    string           `json:"error,omitempty"`
}

var errNonFinite = errors.New("result contains non-finite values")

// httpClient fetches -input URLs.
var httpClient = &http.Client{Timeout: 30 * time.Second}

/*
Read a calculation case.

	Args:
		path: path of a JSON case file, or an http(s) URL serving one
*/
func readCase(path string) (caseFile, error) {
	var rd io.ReadCloser
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := httpClient.Get(path)
		if err != nil {
			return caseFile{}, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return caseFile{}, fmt.Errorf("get %s: %s", path, resp.Status)
		}
		rd = resp.Body
	} else {
		f, err := os.Open(path)
		if err != nil {
			return caseFile{}, err
		}
		rd = f
	}
	defer rd.Close()

	var c caseFile
	if err := json.NewDecoder(rd).Decode(&c); err != nil {
		return caseFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = path
	}
	return c, nil
}

// runCase computes a single case and prints it as JSON.
func runCase(calc *load.Calculator, path string, out io.Writer) ([]report.Row, load.LoadResult, error) {
	c, err := readCase(path)
	if err != nil {
		return nil, load.LoadResult{}, err
	}

	log.Info().Str("case", c.Name).Msg("computing load")
	in := calc.Normalize(c.Room, c.Conditions, c.Product)
	res := calc.Evaluate(in)
	violations := load.Violations(load.Validate(in))
	for _, v := range violations {
		log.Warn().Str("field", v.Field).Msg(v.Message)
	}
	if !res.Finite() {
		return nil, res, errNonFinite
	}

	if err := printJSON(out, caseOutput{Name: c.Name, Result: &res, Warnings: violations}); err != nil {
		return nil, res, err
	}
	return []report.Row{report.NewRow(c.Name, res)}, res, nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

/*
Compute every room of a workbook and print the outcomes as a JSON array.

	Returns:
		one CSV row per case
	Notes:
		A case whose result is not finite is printed with an error and no
		result; its CSV row is still returned.
*/
func runBatch(calc *load.Calculator, path string, out io.Writer) ([]report.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := batch.ReadWorkbook(f)
	if err != nil {
		return nil, err
	}
	log.Info().Int("cases", len(cases)).Str("workbook", path).Msg("computing batch")

	var rows []report.Row
	printed := make([]caseOutput, 0, len(cases))
	for _, o := range batch.Run(calc, cases) {
		rows = append(rows, report.NewRow(o.Case.Name, o.Result))

		co := caseOutput{Name: o.Case.Name, Warnings: load.Violations(o.Err)}
		if o.Result.Finite() {
			res := o.Result
			co.Result = &res
		} else {
			co.Error = errNonFinite.Error()
		}
		printed = append(printed, co)
	}

	if err := printJSON(out, printed); err != nil {
		return nil, err
	}
	return rows, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serve(ctx context.Context, calc *load.Calculator, addr string, opts ...server.Option) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(calc, prometheus.NewRegistry(), opts...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var input string
	flag.StringVar(&input, "input", "", "JSON case file (path or URL) to compute")

	var xlsx string
	flag.StringVar(&xlsx, "xlsx", "", "workbook of rooms to compute in one batch")

	var csvPath string
	flag.StringVar(&csvPath, "csv", "", "write the results to this CSV file")

	var pdfPath string
	flag.StringVar(&pdfPath, "pdf", "", "write a PDF report of the -input case to this file (not with -xlsx)")

	var serveHTTP bool
	flag.BoolVar(&serveHTTP, "serve", false, "serve the HTTP API")

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")

	var tablesDir string
	flag.StringVar(&tablesDir, "tables", cfg.TablesDir, "directory of lookup table CSV files")

	var legacyZero bool
	flag.BoolVar(&legacyZero, "legacy-zero", cfg.LegacyZero, "treat a 0 input like a missing one")

	var logLevel string
	flag.StringVar(&logLevel, "log", cfg.LogLevel, "log level (debug, info, warn, error)")

	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	tables := load.DefaultTables()
	if tablesDir != "" {
		tables, err = load.LoadTablesDir(tablesDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", tablesDir).Msg("failed to load tables")
		}
		log.Info().Str("dir", tablesDir).Msg("loaded lookup tables")
	}

	var opts []load.Option
	if legacyZero {
		opts = append(opts, load.WithLegacyZeroDefaults())
	}
	calc := load.NewCalculator(tables, opts...)

	start := time.Now()

	var rows []report.Row
	switch {
	case serveHTTP:
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		limit := server.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		if err := serve(ctx, calc, addr, limit); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
		log.Info().Msg("server stopped")
		return

	case xlsx != "":
		if pdfPath != "" {
			log.Fatal().Msg("-pdf reports a single -input case and cannot be used with -xlsx")
		}
		rows, err = runBatch(calc, xlsx, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("batch failed")
		}

	case input != "":
		var res load.LoadResult
		rows, res, err = runCase(calc, input, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("calculation failed")
		}
		if pdfPath != "" {
			if err := writeFile(pdfPath, func(w io.Writer) error { return report.WritePDF(w, rows[0].Name, res) }); err != nil {
				log.Fatal().Err(err).Msg("failed to write pdf")
			}
			log.Info().Str("path", pdfPath).Msg("saved pdf report")
		}

	default:
		log.Fatal().Msg("specify -input, -xlsx or -serve")
	}

	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error { return report.WriteCSV(w, rows) }); err != nil {
			log.Fatal().Err(err).Msg("failed to write csv")
		}
		log.Info().Str("path", csvPath).Msg("saved results")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
}
