// Command ecompanel-admin is the operator CLI for the storefront UI: it explains
// route guard decisions, probes dependencies and flushes the catalog cache.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/target/ecompanel-ui/config"
	"github.com/target/ecompanel-ui/internal/bootstrap"
)

// adminApp carries what every subcommand needs. LoadConfig is swappable so
// tests can point commands at local fakes.
type adminApp struct {
	Logger     *slog.Logger
	LoadConfig func() (config.AppConfig, error)
}

func main() {
	logger := bootstrap.InitLogger("warn")
	app := &adminApp{Logger: logger, LoadConfig: bootstrap.LoadConfig}
	if err := newRootCmd(app).ExecuteContext(context.Background()); err != nil {
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func newRootCmd(app *adminApp) *cobra.Command {
	root := &cobra.Command{
		Use:          "ecompanel-admin",
		Short:        "Operator tools for the eCom Panel UI",
		SilenceUsage: true,
	}
	root.AddCommand(newDecideCmd(), newPingCmd(app), newCacheCmd(app))
	return root
}

func (a *adminApp) config() (config.AppConfig, error) {
	cfg, err := a.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
