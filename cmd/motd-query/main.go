// main is the entry point of the motd-query tool. It parses the
// configuration, sets up logging and the optional history database, then
// queries every address given and reports the decoded server status.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mcpetools/motd"
	"github.com/mcpetools/motd/internal/config"
	"github.com/mcpetools/motd/internal/logger"
	"github.com/mcpetools/motd/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// defaultPort is used for addresses given without a port.
const defaultPort = "19132"

type result struct {
	address string
	pong    *motd.Pong
	err     error
}

func main() {
	cfg := config.Parse()
	logger.Setup(cfg.Logger)

	var store *storage.Repository
	if cfg.History.Path != "" {
		var err error
		store, err = storage.New(cfg.History.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize history database")
		}
	}

	if cfg.History.Recent > 0 {
		printRecent(store, cfg.History.Recent)
		closeStore(store)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addresses := normalize(cfg.Args.Addresses)
	limiter := rate.NewLimiter(rate.Limit(cfg.Query.Rate), 1)

	results := make(chan result)
	var wg sync.WaitGroup
	for _, address := range addresses {
		wg.Add(1)
		go func(address string) {
			defer wg.Done()
			if err := limiter.Wait(ctx); err != nil {
				results <- result{address: address, err: err}
				return
			}
			queryCtx, cancel := context.WithTimeout(ctx, cfg.Query.Timeout)
			defer cancel()

			pong, err := motd.PingContext(queryCtx, address)
			results <- result{address: address, pong: pong, err: err}
		}(address)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	failed := 0
	for res := range results {
		if res.err != nil {
			failed++
			log.Error().Err(res.err).Str("address", res.address).Msg("Query failed")
			continue
		}
		if !res.pong.StatusOK {
			log.Debug().Str("address", res.address).Msg("Server id string missed optional fields, defaults were substituted")
		}
		if store != nil {
			if err := store.RecordPing(res.address, res.pong); err != nil {
				log.Error().Err(err).Str("address", res.address).Msg("Failed to record ping")
			}
		}
		if cfg.Query.JSON {
			printJSON(res.address, res.pong)
		} else {
			printText(res.address, res.pong)
		}
	}

	closeStore(store)
	if failed > 0 {
		os.Exit(1)
	}
}

// normalize fills in the default Bedrock port for addresses given without
// one and drops repeated addresses, keeping first occurrence order.
func normalize(addresses []string) []string {
	seen := make(map[uint64]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if !strings.Contains(address, ":") {
			address += ":" + defaultPort
		}
		h := xxhash.Sum64String(address)
		if _, found := seen[h]; found {
			log.Debug().Str("address", address).Msg("Skipping duplicate address")
			continue
		}
		seen[h] = struct{}{}
		out = append(out, address)
	}
	return out
}

func printText(address string, pong *motd.Pong) {
	status := pong.Status
	fmt.Printf("%s\n", address)
	fmt.Printf("  motd:     %s\n", status.MOTD)
	fmt.Printf("  edition:  %s\n", status.Edition)
	fmt.Printf("  version:  %s (protocol %d)\n", status.VersionName, status.ProtocolVersion)
	fmt.Printf("  players:  %d/%d\n", status.PlayerCount, status.MaxPlayerCount)
	fmt.Printf("  gamemode: %s (%d)\n", status.GameMode, status.GameModeNumeric)
	if status.LevelName != "" {
		fmt.Printf("  level:    %s\n", status.LevelName)
	}
	fmt.Printf("  ports:    %d (v4), %d (v6)\n", status.PortV4, status.PortV6)
	fmt.Printf("  uptime:   %v\n", time.Duration(pong.Uptime)*time.Millisecond)
	fmt.Printf("  guid:     %d\n", pong.ServerGUID)
}

func printJSON(address string, pong *motd.Pong) {
	out := struct {
		Address string `json:"address"`
		*motd.Pong
	}{Address: address, Pong: pong}

	data, err := json.Marshal(out)
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("Failed to encode result")
		return
	}
	fmt.Println(string(data))
}

func printRecent(store *storage.Repository, limit int) {
	records, err := store.Recent(limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read history")
	}
	for _, rec := range records {
		fmt.Printf("%-28s %-24s %5d/%-5d %-10s seen %d times, last %s\n",
			rec.Address, rec.Status.MOTD, rec.Status.PlayerCount, rec.Status.MaxPlayerCount,
			rec.Status.VersionName, rec.Count, rec.LastSeen.Format(time.RFC3339))
	}
}

func closeStore(store *storage.Repository) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing history database")
	}
}
