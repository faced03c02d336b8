package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	appmiddleware "github.com/metinatakli/cinema-tickets/internal/middleware"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/ticket"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/metinatakli/cinema-tickets/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
)

const serviceName = "cinema-tickets-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	redis     redis.UniversalClient
	validator *validator.Validate
	tickets   *ticket.Service
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	Redis            RedisConfig
	Stripe           StripeConfig
	Prices           PriceConfig
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type PriceConfig struct {
	Infant int
	Child  int
	Adult  int
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	tickets *ticket.Service) *Application {

	return &Application{
		config:    cfg,
		logger:    logger,
		redis:     redisClient,
		validator: validator,
		tickets:   tickets,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis address; seat reservations are kept in memory when empty")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key; payments are only recorded when empty")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", string(stripe.CurrencyGBP), "Currency of ticket prices")

	flag.IntVar(&cfg.Prices.Infant, "price-infant", domain.DefaultInfantPrice, "Unit price of an infant ticket")
	flag.IntVar(&cfg.Prices.Child, "price-child", domain.DefaultChildPrice, "Unit price of a child ticket")
	flag.IntVar(&cfg.Prices.Adult, "price-adult", domain.DefaultAdultPrice, "Unit price of an adult ticket")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	stripe.Key = cfg.Stripe.SecretKey

	app := &Application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	prices, err := domain.NewPriceTable(cfg.Prices.Infant, cfg.Prices.Child, cfg.Prices.Adult)
	if err != nil {
		return err
	}

	var payments domain.TicketPaymentService = payment.NewStripePaymentService(cfg.Stripe.Currency)
	if cfg.Stripe.SecretKey == "" {
		app.logger.Warn("stripe key not set, payments will only be recorded in memory")
		payments = payment.NewMockPaymentService()
	}

	var seats domain.SeatReservationService = seatbooking.NewMockSeatReservationService()
	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		app.redis = redisClient
		seats = seatbooking.NewRedisSeatReservationService(redisClient)
	} else {
		app.logger.Warn("redis url not set, seat reservations will only be kept in memory")
	}

	tickets, err := ticket.NewService(
		ticket.NewPriceCalculator(prices),
		payments,
		seats,
		ticket.WithLogger(app.logger),
	)
	if err != nil {
		return err
	}
	app.tickets = tickets

	return app.run()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(
		redisotel.InstrumentTracing(rdb),
		redisotel.InstrumentMetrics(rdb),
	)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.RecoverPanic)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.GetHealth)
		r.Get("/openapi.json", app.GetOpenAPISpec)

		r.Post("/purchases", app.CreatePurchaseHandler)
		r.Post("/purchases/quote", app.QuotePurchaseHandler)
	})

	return r
}
