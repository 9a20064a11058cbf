package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"echofm/catalog"
	"echofm/config"
	"echofm/db"
	"echofm/logger"
	"echofm/store"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog store",
	Long:  `Populates an empty store with the bundled catalog. Safe to run repeatedly; a store that already holds data is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logger.InitLogger(logger.Config{Level: logger.LogLevel(cfg.LogLevel)})

		if err := db.ConnectRedis(cfg); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer db.CloseRedis()

		kv := store.NewRedisKV(db.RedisClient, cfg.KeyPrefix)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := catalog.EnsureSeedAll(ctx, kv); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}

		trackKeys, err := kv.ListKeys(ctx, "track:")
		if err != nil {
			log.Fatalf("Failed to count tracks: %v", err)
		}
		playlistKeys, err := kv.ListKeys(ctx, "playlist:")
		if err != nil {
			log.Fatalf("Failed to count playlists: %v", err)
		}

		fmt.Printf("Catalog ready: %d tracks, %d playlists\n", len(trackKeys), len(playlistKeys))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
