// Command ripioctl exercises the Ripio Trade adapter from the command line:
// market data lookups against the public API and order/balance operations
// against the private API when credentials are configured.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tradewire/ripio/config"
	"github.com/tradewire/ripio/internal/adapters/ripio"
	"github.com/tradewire/ripio/internal/schema"
	"github.com/tradewire/ripio/lib/telemetry"
)

const (
	defaultConfigPath        = "config/ripio.yaml"
	telemetryShutdownTimeout = 5 * time.Second
)

func main() {
	var (
		configPath = flag.String("config", defaultConfigPath, "path to the YAML configuration file")
		envFile    = flag.String("env-file", "", "optional .env file loaded before reading the environment")
		symbol     = flag.String("symbol", "BTC/BRL", "canonical symbol for market-data and order commands")
		limit      = flag.Int("limit", 0, "result limit where the command supports one")
		since      = flag.Int64("since", 0, "epoch-millisecond lower bound where the command supports one")
		orderID    = flag.String("order", "", "venue order code for order lookups and cancellation")
		side       = flag.String("side", "", "order side for the create command; optional filter for orders")
		orderType  = flag.String("type", "limit", "order type for the create command")
		amount     = flag.String("amount", "", "order amount for the create command")
		price      = flag.String("price", "", "limit price for the create command")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	ctx, cancel := newSignalContext()
	defer cancel()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fatal("load env file", err)
		}
	}

	settings, loaded, err := config.LoadOrDefault(*configPath, config.FromEnv())
	if err != nil {
		fatal("load config", err)
	}

	logger, err := newLogger(settings.Environment)
	if err != nil {
		fatal("initialise logger", err)
	}
	defer func() { _ = logger.Sync() }()
	if !loaded {
		logger.Info("configuration file not found, using environment and defaults",
			zap.String("path", *configPath))
	}

	_, shutdownTelemetry, err := telemetry.Init(ctx, settings.Exchange.TelemetryEndpoint, "ripioctl")
	if err != nil {
		fatal("initialise telemetry", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer shutdownCancel()
		_ = shutdownTelemetry(shutdownCtx)
	}()

	provider := ripio.New(ripio.Options{
		Settings: settings.Exchange,
		Logger:   logger,
	})

	result, err := dispatch(ctx, provider, command, commandArgs{
		symbol:    *symbol,
		limit:     *limit,
		since:     *since,
		orderID:   *orderID,
		side:      *side,
		orderType: *orderType,
		amount:    *amount,
		price:     *price,
	})
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
	if err := printJSON(result); err != nil {
		fatal("encode result", err)
	}
}

type commandArgs struct {
	symbol    string
	limit     int
	since     int64
	orderID   string
	side      string
	orderType string
	amount    string
	price     string
}

func dispatch(ctx context.Context, provider *ripio.Provider, command string, args commandArgs) (any, error) {
	switch command {
	case "markets":
		return provider.FetchMarkets(ctx)
	case "currencies":
		return provider.FetchCurrencies(ctx)
	case "ticker":
		return provider.FetchTicker(ctx, args.symbol)
	case "book":
		return provider.FetchOrderBook(ctx, args.symbol, args.limit)
	case "trades":
		return provider.FetchTrades(ctx, args.symbol, args.since, args.limit)
	case "balance":
		return provider.FetchBalance(ctx)
	case "create":
		return provider.CreateOrder(ctx, args.symbol,
			schema.OrderType(strings.ToLower(args.orderType)),
			schema.TradeSide(strings.ToLower(args.side)),
			args.amount, args.price)
	case "cancel":
		return provider.CancelOrder(ctx, args.orderID, args.symbol)
	case "order":
		return provider.FetchOrder(ctx, args.orderID, args.symbol)
	case "orders":
		return provider.FetchOrders(ctx, args.symbol, args.since, args.limit,
			schema.TradeSide(strings.ToLower(args.side)))
	case "open-orders":
		return provider.FetchOpenOrders(ctx, args.symbol, args.since, args.limit)
	case "closed-orders":
		return provider.FetchClosedOrders(ctx, args.symbol, args.since, args.limit)
	default:
		return nil, errors.New("unknown command " + command)
	}
}

func newLogger(env config.Environment) (*zap.Logger, error) {
	if env == config.EnvProd {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newSignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: ripioctl [flags] <command>

commands:
  markets        list tradable pairs
  currencies     list supported assets
  ticker         market summary for -symbol
  book           order book for -symbol (-limit truncates)
  trades         public trades for -symbol (-since, -limit)
  balance        wallet balances
  create         submit an order (-symbol, -type, -side, -amount, -price)
  cancel         cancel an order (-order, -symbol)
  order          fetch one order (-order, -symbol)
  orders         list orders for -symbol (-since, -limit, -side)
  open-orders    list resting orders for -symbol
  closed-orders  list finished orders for -symbol`)
	flag.PrintDefaults()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "ripioctl: %s: %v\n", msg, err)
	os.Exit(1)
}
