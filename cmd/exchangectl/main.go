// Command exchangectl inspects the rate table, dry-runs exchanges against a
// config document and publishes config versions to the exchange database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
	"github.com/sbilibin2017/gw-currency-exchange/internal/rates"
	"github.com/sbilibin2017/gw-currency-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-currency-exchange/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "exchangectl",
		Usage: "inspect rates, quote exchanges and manage exchange configs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "error", Usage: "zap log level"},
		},
		Before: func(c *cli.Context) error {
			return logger.Initialize(c.String("log-level"), "console")
		},
		Commands: []*cli.Command{
			ratesCommand(),
			quoteCommand(),
			validateConfigCommand(),
			publishConfigCommand(),
		},
	}
}

func ratesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rates",
		Usage: "print the Copper value of every currency",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tCURRENCY\tCOPPER")
			for _, e := range rates.Table() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Rank, e.CurrencyID, e.Copper)
			}
			return tw.Flush()
		},
	}
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "evaluate an exchange without touching any wallet",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "exchange config JSON file; empty means no fees or limits"},
			&cli.StringFlag{Name: "from", Required: true, Usage: "source currency id or short code"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "target currency id or short code"},
			&cli.Int64Flag{Name: "amount", Required: true, Usage: "units of the source currency"},
		},
		Action: func(c *cli.Context) error {
			cfg := models.ExchangeConfig{}
			if path := c.String("config"); path != "" {
				var err error
				if cfg, err = readConfig(path); err != nil {
					return err
				}
			}

			req := models.ExchangeRequest{
				PlayerID: "exchangectl",
				From:     models.ExchangeFrom{CurrencyID: currencyArg(c.String("from")), Amount: c.Int64("amount")},
				To:       models.ExchangeTo{CurrencyID: currencyArg(c.String("to"))},
			}

			result, err := services.Quote(cfg, req)
			if err != nil {
				return fmt.Errorf("%s: %w", services.ErrorCode(err), err)
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func validateConfigCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate-config",
		Usage:     "parse an exchange config document and list its pairs",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one config file")
			}
			cfg, err := readConfig(c.Args().First())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "version %q is valid\n", cfg.Version())
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAIR\tFEE\tMIN")
			for _, p := range cfg.Pairs() {
				fee, _ := cfg.FeeRate(p)
				min, _ := cfg.MinUnit(p)
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p, fee, min)
			}
			return tw.Flush()
		},
	}
}

func publishConfigCommand() *cli.Command {
	return &cli.Command{
		Name:      "publish-config",
		Usage:     "store a config document as the newest version",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", Required: true, EnvVars: []string{"DATABASE_URL"}, Usage: "PostgreSQL connection string"},
			&cli.StringFlag{Name: "as-version", Usage: "overrides the version inside the document"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one config file")
			}
			cfg, err := readConfig(c.Args().First())
			if err != nil {
				return err
			}
			if v := c.String("as-version"); v != "" {
				cfg = cfg.WithVersion(v)
			}
			if cfg.Version() == "" {
				return fmt.Errorf("config version is required")
			}

			db, err := sqlx.ConnectContext(c.Context, "pgx", c.String("dsn"))
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer db.Close()

			if err := repositories.Migrate(c.Context, db); err != nil {
				return err
			}
			if err := repositories.NewExchangeConfigRepository(db).Save(c.Context, cfg); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "published version %q\n", cfg.Version())
			return nil
		},
	}
}

func readConfig(path string) (models.ExchangeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ExchangeConfig{}, err
	}
	return models.ParseExchangeConfig(data)
}

// currencyArg resolves short codes; unknown input is passed through so the
// engine reports it as an unsupported currency.
func currencyArg(s string) models.CurrencyID {
	if id, ok := models.ParseCurrencyID(s); ok {
		return id
	}
	return models.CurrencyID(s)
}
