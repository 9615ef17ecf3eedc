package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/target/ecompanel-ui/internal/adapters/backendapi"
	redisadapter "github.com/target/ecompanel-ui/internal/adapters/redis"
	"github.com/target/ecompanel-ui/internal/bootstrap"
	"github.com/target/ecompanel-ui/internal/ports"
)

const defaultPingTimeout = 5 * time.Second

var errPingFailed = errors.New("one or more dependencies are unreachable")

type pingResult struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

func newPingCmd(app *adminApp) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend API and Redis are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			backend, err := backendapi.NewClient(backendapi.Config{
				BaseURL: cfg.Backend.BaseURL,
				Timeout: timeout,
				Logger:  app.Logger,
			})
			if err != nil {
				return fmt.Errorf("create backend client: %w", err)
			}
			redisClient, _, err := bootstrap.NewRedisClient(cfg.Redis)
			if err != nil {
				return err
			}
			defer func() { _ = redisClient.Close() }()

			checks := []namedCheck{
				{Name: "backend", Check: backend},
				{Name: "redis", Check: redisadapter.NewCacheRepo(redisClient)},
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return reportPings(cmd, runPings(ctx, checks))
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", defaultPingTimeout, "per-dependency timeout")
	return cmd
}

type namedCheck struct {
	Name  string
	Check ports.HealthChecker
}

// runPings probes every check concurrently and returns results in input order.
func runPings(ctx context.Context, checks []namedCheck) []pingResult {
	results := make([]pingResult, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Check.Health(ctx)
			results[i] = pingResult{Name: c.Name, Err: err, Elapsed: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func reportPings(cmd *cobra.Command, results []pingResult) error {
	out := cmd.OutOrStdout()
	failed := false
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "FAIL: " + r.Err.Error()
			failed = true
		}
		if err := writef(out, "%-8s %s (%s)\n", r.Name, status, r.Elapsed.Round(time.Millisecond)); err != nil {
			return err
		}
	}
	if failed {
		return errPingFailed
	}
	return nil
}
