package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrInvalidAmount = errors.New("price must be a positive amount")

// PaymentService creates card payment intents for test bookings.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

type StripePaymentService struct {
	api *client.API
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{api: client.New(secretKey, nil)}
}

// AmountInCents converts a price in dollars to whole cents, dropping fractions of a cent.
func AmountInCents(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}
	cents := int64(price * 100)
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount, err := AmountInCents(price)
	if err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent for %d cents: %w", amount, err)
	}
	return intent.ClientSecret, nil
}
