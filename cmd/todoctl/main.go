// Package main implements todoctl, a command-line client for the todo
// service. Commands go through the optimistic mutation coordinator, so
// todoctl exercises the same code path an embedding application would.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yjkwon/todo-service/internal/adapters/rest"
	"github.com/yjkwon/todo-service/internal/client"
	"github.com/yjkwon/todo-service/internal/platform/config"
	"github.com/yjkwon/todo-service/internal/platform/httpclient"
	"github.com/yjkwon/todo-service/internal/platform/logging"
)

var (
	flagBaseURL  string
	flagTimeout  time.Duration
	flagLimit    int
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "todoctl",
	Short: "Command-line client for the todo service",
	Long: `todoctl talks to a running todo service over its HTTP API.

List reads are cached page by page; toggle mutations are applied to the
local view optimistically and rolled back when the server rejects them.

Example usage:
  todoctl list
  todoctl add "write the report"
  todoctl toggle 3 --done
  todoctl delete 3`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "http://localhost:8080", "todo service base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "per-request timeout")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 20, "page size for list fetches")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// newCoordinator builds the full client stack from the persistent flags:
// instrumented HTTP client, REST adapter, cache, coordinator.
func newCoordinator() *client.Coordinator {
	logger := logging.New(flagLogLevel, "text", os.Stderr)

	clientCfg := config.ClientConfig{
		BaseURL: flagBaseURL,
		Timeout: flagTimeout,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 2,
		},
	}

	httpClient := httpclient.New(&clientCfg, "todo-api", nil, logger)
	api := rest.NewTodoAPI(httpClient, logger)
	cache := client.NewListCache(flagLimit)

	return client.NewCoordinator(api, cache, logger)
}
