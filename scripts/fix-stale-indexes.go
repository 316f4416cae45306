package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Index sets that hold encounter ids
var indexPatterns = []string{"encounter:owner:*", "encounter:session:*"}

type staleEntry struct {
	index string
	id    string
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning encounter indexes for missing encounters...")

	var stale []staleEntry
	var checkedCount int

	for _, pattern := range indexPatterns {
		iter := client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			index := iter.Val()

			ids, err := client.SMembers(ctx, index).Result()
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", index, err)
				continue
			}

			for _, id := range ids {
				checkedCount++
				exists, err := client.Exists(ctx, "encounter:"+id).Result()
				if err != nil {
					fmt.Printf("Error checking encounter %s: %v\n", id, err)
					continue
				}
				if exists == 0 {
					fmt.Printf("✗ %s lists missing encounter %s\n", index, id)
					stale = append(stale, staleEntry{index: index, id: id})
				}
			}
		}
		if err := iter.Err(); err != nil {
			log.Fatal("Error during scan:", err)
		}
	}

	fmt.Printf("\nChecked %d index entries, found %d stale\n", checkedCount, len(stale))

	if len(stale) == 0 {
		fmt.Println("No stale index entries found!")
		return
	}

	fmt.Print("\nDo you want to REMOVE these index entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, entry := range stale {
		if err := client.SRem(ctx, entry.index, entry.id).Err(); err != nil {
			fmt.Printf("Failed to remove %s from %s: %v\n", entry.id, entry.index, err)
		} else {
			fmt.Printf("Removed %s from %s\n", entry.id, entry.index)
		}
	}
	fmt.Println("\nCleanup complete!")
}
