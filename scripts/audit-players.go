package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/entities"
)

// Scans stored player records and reports ones that would break routing:
// unparseable JSON, a location the world no longer has, rumors missing
// from the pool, or health outside its bounds. Read-only; fixing is a
// manual decision.
func main() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	cnt := content.Default()
	knownRumors := make(map[string]bool, len(cnt.Rumors))
	for _, r := range cnt.Rumors {
		knownRumors[r] = true
	}

	fmt.Println("Connected to Redis:", redisAddr)
	fmt.Println("Scanning player records...")

	iter := client.Scan(ctx, 0, "player:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record entities.Player
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		if _, ok := cnt.Locations[record.CurrentLocation]; !ok {
			fmt.Printf("✗ %s is at unknown location %q\n", key, record.CurrentLocation)
			badKeys = append(badKeys, key)
			continue
		}

		if record.CurrentHealth < 0 || record.CurrentHealth > record.MaxHealth {
			fmt.Printf("✗ %s has health %d/%d\n", key, record.CurrentHealth, record.MaxHealth)
			badKeys = append(badKeys, key)
			continue
		}

		seen := make(map[string]bool, len(record.Journal.Rumors))
		for _, heard := range record.Journal.Rumors {
			if !knownRumors[heard] || seen[heard] {
				fmt.Printf("✗ %s has an unknown or duplicate rumor\n", key)
				badKeys = append(badKeys, key)
				break
			}
			seen[heard] = true
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad records\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("All player records are consistent.")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}
}
