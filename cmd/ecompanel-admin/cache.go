package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	redisadapter "github.com/target/ecompanel-ui/internal/adapters/redis"
	"github.com/target/ecompanel-ui/internal/bootstrap"
	"github.com/target/ecompanel-ui/internal/service"
)

var cacheResources = []string{"banners", "brands", "categories", "products"}

func newCacheCmd(app *adminApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the catalog cache",
	}
	cmd.AddCommand(newCacheFlushCmd(app))
	return cmd
}

func newCacheFlushCmd(app *adminApp) *cobra.Command {
	var resource string
	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Delete cached catalog reads",
		Long: `Delete cached catalog reads from Redis. Carts and session profiles are kept.

Examples:
  ecompanel-admin cache flush
  ecompanel-admin cache flush --resource products`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, err := flushPrefix(resource)
			if err != nil {
				return err
			}
			cfg, err := app.config()
			if err != nil {
				return err
			}
			client, err := bootstrap.ConnectRedis(cmd.Context(), cfg.Redis, app.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			n, err := redisadapter.NewCacheRepo(client).DeletePrefix(cmd.Context(), prefix)
			if err != nil {
				return fmt.Errorf("flush %s: %w", prefix, err)
			}
			return writef(cmd.OutOrStdout(), "removed %d cached keys under %s\n", n, prefix)
		},
	}
	cmd.Flags().StringVar(&resource, "resource", "",
		"limit the flush to one resource ("+strings.Join(cacheResources, ", ")+")")
	return cmd
}

func flushPrefix(resource string) (string, error) {
	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		return service.CatalogCachePrefix, nil
	}
	if !slices.Contains(cacheResources, resource) {
		return "", fmt.Errorf("unknown resource %q; expected one of %s", resource, strings.Join(cacheResources, ", "))
	}
	return service.CatalogCachePrefix + resource + ":", nil
}
