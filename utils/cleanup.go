package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// lookupCacheKeys are the redis keys the lookup endpoints cache under; the
// nightly cleanup drops them so reference-data edits show up by the next day
// even without an explicit invalidation.
var lookupCacheKeys = []string{"lookup:puroks", "lookup:landmarks"}

// CleanupExpiredFiles removes a file once it is older than the TTL
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
	}
	return nil
}

// CleanupLookupCache drops the cached purok/landmark lists from Redis
func CleanupLookupCache(redisClient *redis.Client) error {
	if err := redisClient.Del(context.Background(), lookupCacheKeys...).Err(); err != nil {
		return fmt.Errorf("error deleting lookup cache keys from Redis: %v", err)
	}
	return nil
}

// CleanupAllExpired expires generated export files and the lookup cache
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir(ExportDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return CleanupLookupCache(redisClient)
		}
		return fmt.Errorf("error reading export directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := filepath.Join(ExportDirectory, file.Name())
		if err := CleanupExpiredFiles(filePath, fileTTL); err != nil {
			log.Println("Error cleaning up file:", err)
		}
	}

	return CleanupLookupCache(redisClient)
}

// RunScheduledCleanup runs cleanup tasks daily at 1 AM with retries
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		for retries := 0; retries < maxRetries; retries++ {
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful")
				return
			}
			log.Printf("cleanup failed: %v", err)
			time.Sleep(retryDelay)
		}

		log.Printf("cleanup task failed after %d retries", maxRetries)
	})

	c.Start()

	// Keep this goroutine alive for the cron schedule
	select {}
}
