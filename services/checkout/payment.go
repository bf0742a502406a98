package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"islandstay/models"
)

// ErrNoPaymentRequired is returned by Mount when the session needs no payment
// collection step; the flow books directly.
var ErrNoPaymentRequired = errors.New("no payment collection required")

// PaymentConfig is the context a payment adapter mounts with. TransactionID
// and SecretKey are present when the provider negotiated payment-SDK mode at
// prebook time.
type PaymentConfig struct {
	TransactionID string
	SecretKey     string
	Amount        float64
	Currency      string
	CollectCard   bool
}

// PaymentProvider is the capability contract for the checkout's payment step:
// mount a collection attempt, verify its completion signal, and tear it down.
// Teardown is guaranteed even when initialization or verification fails.
type PaymentProvider interface {
	Mount(ctx context.Context, cfg PaymentConfig) (*models.PaymentHandle, error)
	Verify(ctx context.Context, handle *models.PaymentHandle) error
	Unmount(ctx context.Context, handle *models.PaymentHandle) error
}

// WidgetPaymentProvider adapts the provider's embedded payment widget. The
// widget runs in the browser keyed by the transaction/secret pair, so the
// server side of the capability is a pass-through handle; the completion
// signal arrives as an explicit callback from the client.
type WidgetPaymentProvider struct {
	Logger *zap.Logger
}

func NewWidgetPaymentProvider(logger *zap.Logger) *WidgetPaymentProvider {
	return &WidgetPaymentProvider{Logger: logger}
}

func (p *WidgetPaymentProvider) Mount(ctx context.Context, cfg PaymentConfig) (*models.PaymentHandle, error) {
	if cfg.TransactionID == "" || cfg.SecretKey == "" {
		return nil, ErrNoPaymentRequired
	}
	p.Logger.Info("payment widget mounted", zap.String("transactionId", cfg.TransactionID))
	return &models.PaymentHandle{
		ID:            cfg.TransactionID,
		TransactionID: cfg.TransactionID,
		SecretKey:     cfg.SecretKey,
		Provider:      "widget",
	}, nil
}

// Verify trusts the widget's completion callback; the provider validates the
// transaction again when the booking is created.
func (p *WidgetPaymentProvider) Verify(ctx context.Context, handle *models.PaymentHandle) error {
	return nil
}

func (p *WidgetPaymentProvider) Unmount(ctx context.Context, handle *models.PaymentHandle) error {
	if handle != nil {
		p.Logger.Info("payment widget unmounted", zap.String("transactionId", handle.TransactionID))
	}
	return nil
}

// StripePaymentProvider collects card payments through Stripe when the
// provider did not negotiate its own payment-SDK pair. Mount creates a
// PaymentIntent whose id/client secret become the session's handoff fields.
type StripePaymentProvider struct {
	Logger *zap.Logger
}

func NewStripePaymentProvider(apiKey string, logger *zap.Logger) *StripePaymentProvider {
	stripe.Key = apiKey
	return &StripePaymentProvider{Logger: logger}
}

func (p *StripePaymentProvider) Mount(ctx context.Context, cfg PaymentConfig) (*models.PaymentHandle, error) {
	// The provider's own widget takes precedence when prebook negotiated it.
	if cfg.TransactionID != "" && cfg.SecretKey != "" {
		return &models.PaymentHandle{
			ID:            cfg.TransactionID,
			TransactionID: cfg.TransactionID,
			SecretKey:     cfg.SecretKey,
			Provider:      "widget",
		}, nil
	}
	if !cfg.CollectCard {
		return nil, ErrNoPaymentRequired
	}
	if cfg.Amount <= 0 {
		return nil, fmt.Errorf("cannot collect payment for non-positive amount %.2f", cfg.Amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(cfg.Amount * 100)),
		Currency: stripe.String(strings.ToLower(cfg.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	p.Logger.Info("payment intent created", zap.String("intent", intent.ID))
	return &models.PaymentHandle{
		ID:            intent.ID,
		TransactionID: intent.ID,
		SecretKey:     intent.ClientSecret,
		Provider:      "stripe",
	}, nil
}

// Verify checks the intent actually succeeded before the booking is created;
// the client's completion signal alone is not proof of payment.
func (p *StripePaymentProvider) Verify(ctx context.Context, handle *models.PaymentHandle) error {
	if handle == nil || handle.Provider != "stripe" {
		return nil
	}
	intent, err := paymentintent.Get(handle.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment intent %s not completed (status %s)", intent.ID, intent.Status)
	}
	return nil
}

func (p *StripePaymentProvider) Unmount(ctx context.Context, handle *models.PaymentHandle) error {
	if handle == nil || handle.Provider != "stripe" {
		return nil
	}
	// Cancel abandoned intents; completed ones refuse cancellation, which is fine.
	if _, err := paymentintent.Cancel(handle.ID, nil); err != nil {
		p.Logger.Debug("payment intent cancel skipped", zap.String("intent", handle.ID), zap.Error(err))
	}
	return nil
}
