package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"stockbooks/internal/core"
)

type Config struct {
	App struct {
		Port           int    `envconfig:"PORT" default:"8080"`
		LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
		AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`
	}

	DB struct {
		URL string `envconfig:"DATABASE_URL"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	}

	// Report selects where the four report collections come from. When
	// SourceURL is set the aggregation reads a remote dashboard API instead
	// of the local database.
	Report struct {
		SourceURL   string `envconfig:"REPORT_SOURCE_URL"`
		SourceToken string `envconfig:"REPORT_SOURCE_TOKEN"`
	}

	// Ledger supplies the balances the aggregation cannot derive from the
	// collections. All default to zero until a real ledger integration
	// provides them.
	Ledger struct {
		Cash      string `envconfig:"LEDGER_CASH" default:"0"`
		Bank      string `envconfig:"LEDGER_BANK" default:"0"`
		Rent      string `envconfig:"LEDGER_RENT" default:"0"`
		Utilities string `envconfig:"LEDGER_UTILITIES" default:"0"`
		Salaries  string `envconfig:"LEDGER_SALARIES" default:"0"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// LedgerInputs parses the configured ledger balances.
func (c *Config) LedgerInputs() (core.LedgerInputs, error) {
	var (
		in  core.LedgerInputs
		err error
	)
	parse := func(name, value string) decimal.Decimal {
		d, perr := decimal.NewFromString(value)
		if perr != nil && err == nil {
			err = fmt.Errorf("invalid %s value %q: %w", name, value, perr)
		}
		return d
	}

	in.Cash = parse("LEDGER_CASH", c.Ledger.Cash)
	in.Bank = parse("LEDGER_BANK", c.Ledger.Bank)
	in.Rent = parse("LEDGER_RENT", c.Ledger.Rent)
	in.Utilities = parse("LEDGER_UTILITIES", c.Ledger.Utilities)
	in.Salaries = parse("LEDGER_SALARIES", c.Ledger.Salaries)
	return in, err
}
