// Command diceware prints randomly selected words for passphrase use.
// Word selection comes from the diceware library; this command is the
// caller that picks a pool, a count, and the output formatting.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/laceymwes/deep-dive-diceware/pkg/config"
	"github.com/laceymwes/deep-dive-diceware/pkg/diceware"
	"github.com/laceymwes/deep-dive-diceware/pkg/wordlist"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig holds the command settings, loaded from the environment with
// flag overrides on top.
type appConfig struct {
	Count     int    `env:"DICEWARE_COUNT" envDefault:"6"`
	AllowDups bool   `env:"DICEWARE_ALLOW_DUPLICATES" envDefault:"false"`
	List      string `env:"DICEWARE_LIST" envDefault:"short"`
	Separator string `env:"DICEWARE_SEPARATOR" envDefault:" "`
	Verbose   bool   `env:"DICEWARE_VERBOSE" envDefault:"false"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid environment configuration:", err)
		return 1
	}

	flag.IntVar(&cfg.Count, "n", cfg.Count, "number of words to select")
	flag.BoolVar(&cfg.AllowDups, "allow-duplicates", cfg.AllowDups, "permit selecting the same word twice")
	flag.StringVar(&cfg.List, "list", cfg.List, "built-in word list: short or memorable")
	flag.StringVar(&cfg.Separator, "sep", cfg.Separator, "separator between printed words")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var pool []string
	switch cfg.List {
	case "short":
		pool = wordlist.Short()
	case "memorable":
		pool = wordlist.Memorable()
	default:
		logger.Error("unknown word list", "list", cfg.List)
		return 1
	}

	gen, err := diceware.New(pool, diceware.NewCryptoSource())
	if err != nil {
		logger.Error("building generator", "error", err)
		return 1
	}
	logger.Debug("generator ready",
		"version", version,
		"list", cfg.List,
		"pool_size", gen.PoolSize(),
		"count", cfg.Count,
		"allow_duplicates", cfg.AllowDups,
	)

	words, err := gen.NextN(cfg.Count, cfg.AllowDups)
	if err != nil {
		logger.Error("selecting words", "error", err)
		return 1
	}

	fmt.Println(strings.Join(words, cfg.Separator))
	return 0
}
