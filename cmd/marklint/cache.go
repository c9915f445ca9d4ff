package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marklint/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk result cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all cached lint results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgPath, err := config.Discover(".")
		if err != nil {
			return err
		}
		cache := openCache(cfg, cfgPath)
		if cache == nil {
			return fmt.Errorf("failed to open cache directory")
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clean cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "cache cleaned")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
