package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/robotomize/birates"
	"github.com/robotomize/birates/httputil"
	"github.com/robotomize/birates/internal/config"
	"github.com/robotomize/birates/internal/logging"
	"github.com/robotomize/birates/internal/render"
)

var errUsage = errors.New("invalid usage")

// clientFactory builds the client for the resolved base URL
type clientFactory func(baseURL url.URL) birates.ExchangeRatesClient

func defaultClientFactory(baseURL url.URL) birates.ExchangeRatesClient {
	return birates.New(httputil.DefaultHTTPClient(), birates.WithBaseURL(baseURL))
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := realMain(ctx, os.Args[1:], os.Stdout, os.Stderr, defaultClientFactory)
	done()

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "birates: %v\n", err)
		}
		os.Exit(1)
	}
}

func realMain(ctx context.Context, args []string, stdout, stderr io.Writer, newClient clientFactory) error {
	cfg, err := config.Load(birates.DefaultBaseURL)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flagSet := flag.NewFlagSet("birates", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { usage(flagSet) }

	var (
		lang     = flagSet.String("lang", cfg.Lang, "language of the returned texts, variants: En, It")
		timeout  = flagSet.Duration("timeout", cfg.Timeout, "request timeout")
		baseURL  = flagSet.String("base-url", cfg.BaseURL, "REST root of the exchange rates service")
		logLevel = flagSet.String("log-level", cfg.LogLevel, "log level, variants: debug, info, warn, error")
	)

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return fmt.Errorf("%w: verb is required", errUsage)
	}

	language, err := birates.ParseLanguage(*lang)
	if err != nil {
		return fmt.Errorf("flag -lang: %w", err)
	}

	u, err := parseBaseURL(*baseURL)
	if err != nil {
		return fmt.Errorf("flag -base-url: %w", err)
	}

	if *timeout <= 0 {
		return fmt.Errorf("%w: flag -timeout must be positive, got %s", errUsage, *timeout)
	}

	verbName, verbArgs := flagSet.Arg(0), flagSet.Args()[1:]
	v, ok := lookupVerb(verbName)
	if !ok {
		flagSet.Usage()
		return fmt.Errorf("%w: unknown verb %q", errUsage, verbName)
	}

	if err := v.checkArgs(verbArgs); err != nil {
		return fmt.Errorf("%s: %w", verbName, err)
	}

	logger := logging.NewLogger("birates", *logLevel)
	defer func() { _ = logger.Sync() }()

	ctx = logging.WithLogger(ctx, logger)
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	logger.Debugw("running verb", "verb", verbName, "args", verbArgs, "lang", language.String())

	a := &app{
		client: newClient(u),
		out:    render.New(stdout, language),
		lang:   language,
	}

	if err := v.run(ctx, a, verbArgs); err != nil {
		return fmt.Errorf("%s: %w", verbName, err)
	}

	return nil
}

func parseBaseURL(raw string) (url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return url.URL{}, fmt.Errorf("%w: %v", errUsage, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return url.URL{}, fmt.Errorf("%w: base url %q must be absolute", errUsage, raw)
	}

	return *u, nil
}

func usage(flagSet *flag.FlagSet) {
	w := flagSet.Output()
	fmt.Fprintf(w, "Usage: birates [flags] <verb> [args]\n\nVerbs:\n")
	for _, v := range verbs {
		fmt.Fprintf(w, "  %-18s %s\n", v.name, v.args)
	}

	fmt.Fprintf(w, "\nFlags:\n")
	flagSet.PrintDefaults()
}
