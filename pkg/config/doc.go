// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory once per process, when such a file exists.
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for scenarios
//     where configuration is critical.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type GeneratorConfig struct {
//	    Count     int    `env:"DICEWARE_COUNT" envDefault:"6"`
//	    List      string `env:"DICEWARE_LIST" envDefault:"short"`
//	    Separator string `env:"DICEWARE_SEPARATOR" envDefault:" "`
//	}
//
// Then populate the struct:
//
//	import "github.com/laceymwes/deep-dive-diceware/pkg/config"
//
//	func main() {
//	    var cfg GeneratorConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    // cfg is now populated.
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct, joined with
//     the underlying parser error.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
