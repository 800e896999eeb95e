package service

import (
    "context"
    "errors"
    "fmt"

    stripe "github.com/stripe/stripe-go/v76"
    "github.com/stripe/stripe-go/v76/client"

    "github.com/iliyamo/parts-store-api/internal/logger"
)

// CurrencyUSD is the only currency the shop charges in.
const CurrencyUSD = "usd"

// StripeGateway creates Stripe PaymentIntents and hands back their client
// secret; the browser completes the charge with Stripe directly.
type StripeGateway struct {
    api *client.API
}

// NewStripeGateway returns a gateway talking to the live Stripe API.
func NewStripeGateway(key string) *StripeGateway {
    return &StripeGateway{api: client.New(key, nil)}
}

// NewStripeGatewayWithURL points the gateway at another API base URL, such
// as stripe-mock or a test server.  Network retries are disabled.
func NewStripeGatewayWithURL(key, url string) *StripeGateway {
    backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
        URL:               stripe.String(url),
        MaxNetworkRetries: stripe.Int64(0),
        LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
    })
    return &StripeGateway{api: client.New(key, &stripe.Backends{
        API:     backend,
        Connect: backend,
        Uploads: backend,
    })}
}

// CreatePaymentIntent asks Stripe for a card PaymentIntent of amount (in the
// smallest currency unit) and returns its client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
    if amount <= 0 {
        return "", errors.New("amount must be positive")
    }
    params := &stripe.PaymentIntentParams{
        Amount:             stripe.Int64(amount),
        Currency:           stripe.String(currency),
        PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
    }
    params.Context = ctx

    logger.ExternalServiceCall(ctx, "stripe", "payment_intents.create", "amount", amount, "currency", currency)
    pi, err := g.api.PaymentIntents.New(params)
    logger.ExternalServiceResult(ctx, "stripe", "payment_intents.create", err)
    if err != nil {
        return "", fmt.Errorf("create payment intent: %w", err)
    }
    return pi.ClientSecret, nil
}
