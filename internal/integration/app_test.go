package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/cinema-tickets/internal/app"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/ticket"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App      *app.Application
	Redis    *redis.Client
	Payments *payment.MockPaymentService
	Seats    *seatbooking.RedisSeatReservationService
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	payments := payment.NewMockPaymentService()
	seats := seatbooking.NewRedisSeatReservationService(redisClient)

	tickets, err := ticket.NewService(
		ticket.NewPriceCalculator(domain.DefaultPriceTable()),
		payments,
		seats,
		ticket.WithLogger(logger),
	)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	application := app.NewApp(cfg, logger, redisClient, validator, tickets)

	return &TestApp{
		App:      application,
		Redis:    redisClient,
		Payments: payments,
		Seats:    seats,
	}, nil
}
