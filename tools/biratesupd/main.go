// Command biratesupd downloads fresh responses of the exchange rates service into a fixtures folder
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/birates"
	"github.com/robotomize/birates/httputil"
	"github.com/robotomize/birates/internal/hashio"
	"github.com/robotomize/birates/internal/logging"
	"github.com/robotomize/birates/internal/query"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultRetryDuration  = 2 * time.Second
	defaultRetryNum       = 3
)

var ErrHashingContentEqual = errors.New("hash of the fetching file is equivalent to the previous version")

type fixture struct {
	fileName string
	endpoint string
	query    string
}

var fixtures = []fixture{
	{fileName: "latest_rates.json", endpoint: birates.PathLatestRates, query: query.Latest(birates.LanguageEn.String())},
	{fileName: "currencies.json", endpoint: birates.PathCurrencies, query: query.Currencies(birates.LanguageEn.String())},
}

// Fetcher returns the raw body of an endpoint, *birates.Client implements it
type Fetcher interface {
	Fetch(ctx context.Context, endpoint, rawQuery string) ([]byte, error)
}

var flagUpd = flag.NewFlagSet("biratesupd", flag.ContinueOnError)

var (
	path     = flagUpd.String("target", "", "path to the folder with the fixtures")
	hashFunc = flagUpd.String("hash", "", "hash alg for compare files, variants: md5, sha1, sha256")
	baseURL  = flagUpd.String("base-url", birates.DefaultBaseURL, "REST root of the exchange rates service")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("biratesupd", "info"))
	logger := logging.FromContext(ctx)

	if err := flagUpd.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *path == "" {
		logger.Fatal("use -target <path> path to the folder with the fixtures")
	}

	hasher, err := hashio.ParseHasher(*hashFunc)
	if err != nil {
		logger.Fatalf("flag -hash: %v", err)
	}

	u, err := parseURL(*baseURL)
	if err != nil {
		logger.Fatalf("flag -base-url: %v", err)
	}

	client := birates.New(httputil.DefaultHTTPClient(), birates.WithBaseURL(u))

	if err := realMain(ctx, client, *path, hasher, retryBackoff(defaultRetryDuration)); err != nil {
		var multiErr *multierror.Error
		if errors.As(err, &multiErr) {
			for _, wrErr := range multiErr.WrappedErrors() {
				if !errors.Is(wrErr, ErrHashingContentEqual) {
					logger.Fatal(multiErr)
				}

				logger.Warnf("%v", wrErr)
			}
			return
		}

		logger.Fatal(err)
	}

	logger.Infof("fixtures were updated in %s", *path)
}

// retryBackoff returns a factory, the max retries wrapper keeps state and can not be shared
func retryBackoff(d time.Duration) func() retry.Backoff {
	return func() retry.Backoff {
		b, _ := retry.NewConstant(d)

		return retry.WithMaxRetries(defaultRetryNum, b)
	}
}

func parseURL(raw string) (url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return url.URL{}, fmt.Errorf("url parse: %w", err)
	}

	return *u, nil
}

func realMain(
	ctx context.Context, client Fetcher, path string, hasher hashio.Hasher, backoff func() retry.Backoff,
) error {
	var group multierror.Group

	for _, f := range fixtures {
		f := f

		group.Go(func() error {
			if err := sync(ctx, client, path, f, hasher, backoff()); err != nil {
				return fmt.Errorf("sync %s: %w", f.fileName, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return nil
}

func sync(
	ctx context.Context, client Fetcher, dir string, f fixture, hasher hashio.Hasher, backoff retry.Backoff,
) error {
	logger := logging.FromContext(ctx).With("file", f.fileName)

	var body []byte
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
		defer cancel()

		b, err := client.Fetch(ctx, f.endpoint, f.query)
		if err != nil {
			var statusErr *httputil.StatusError
			if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
				return err
			}

			logger.Debugw("retrying fetch", "error", err)

			return retry.RetryableError(fmt.Errorf("fetch %s: %w", f.endpoint, err))
		}

		body = b

		return nil
	}); err != nil {
		return err
	}

	equal, err := hashio.Equal(os.DirFS(dir), f.fileName, body, hasher)
	if err != nil {
		return fmt.Errorf("compare content: %w", err)
	}

	if equal {
		return fmt.Errorf("%s: %w", f.fileName, ErrHashingContentEqual)
	}

	fileName := filepath.Join(dir, f.fileName)

	var mode os.FileMode = 0o644
	if info, err := os.Stat(fileName); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(fileName, body, mode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Infow("fixture updated", "bytes", len(body))

	return nil
}
