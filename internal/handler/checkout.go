package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	chapa "github.com/zeal-nerd/chapa-go"
)

// PaymentClient defines the subset of the Chapa client used by the processor.
type PaymentClient interface {
	InitPayment(ctx context.Context, amount float64, opts *chapa.PaymentOptions) (*chapa.PaymentCheckout, error)
	VerifyTransaction(ctx context.Context, txRef string) (*chapa.PaymentDetail, error)
}

// CheckoutEvent represents the payload sent to the Lambda function.
type CheckoutEvent struct {
	Amount    float64        `json:"amount"`
	Currency  string         `json:"currency,omitempty"`
	Email     string         `json:"email,omitempty"`
	FirstName string         `json:"first_name,omitempty"`
	LastName  string         `json:"last_name,omitempty"`
	TxRef     string         `json:"tx_ref,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// CheckoutResponse is emitted after processing completes.
type CheckoutResponse struct {
	TxRef       string               `json:"tx_ref"`
	CheckoutURL string               `json:"checkout_url"`
	Status      string               `json:"status"`
	Verified    bool                 `json:"verified"`
	Payment     *chapa.PaymentDetail `json:"payment,omitempty"`
	Message     string               `json:"message,omitempty"`
	Request     CheckoutEvent        `json:"request"`
}

// CallbackSender delivers checkout outcomes to downstream systems.
type CallbackSender interface {
	Send(ctx context.Context, payload CheckoutResponse) error
}

// Processor coordinates payment initialization and verification polling.
type Processor struct {
	client       PaymentClient
	pollInterval time.Duration
	timeout      time.Duration
	log          zerolog.Logger
	callback     CallbackSender
}

// Option customizes the processor.
type Option func(*Processor)

// WithPollInterval adjusts the delay between verification calls.
func WithPollInterval(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// WithTimeout overrides the total polling timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger lets callers supply a custom logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.log = l
	}
}

// WithCallbackSender wires a callback destination invoked after processing
// concludes.
func WithCallbackSender(sender CallbackSender) Option {
	return func(p *Processor) {
		p.callback = sender
	}
}

// NewProcessor builds a Processor with sane defaults.
func NewProcessor(client PaymentClient, opts ...Option) *Processor {
	p := &Processor{
		client:       client,
		pollInterval: 5 * time.Second,
		timeout:      5 * time.Minute,
		log:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Handle implements the AWS Lambda handler entry point.
func (p *Processor) Handle(ctx context.Context, event CheckoutEvent) (CheckoutResponse, error) {
	if err := validateEvent(event); err != nil {
		return CheckoutResponse{}, err
	}

	txRef := strings.TrimSpace(event.TxRef)
	if txRef == "" {
		txRef = "checkout-" + uuid.NewString()
	}

	opts := &chapa.PaymentOptions{
		Currency:  chapa.Currency(event.Currency),
		Email:     event.Email,
		FirstName: event.FirstName,
		LastName:  event.LastName,
		TxRef:     txRef,
		Meta:      event.Meta,
	}

	p.log.Info().Str("tx_ref", txRef).Float64("amount", event.Amount).Msg("initializing payment")
	checkout, err := p.client.InitPayment(ctx, event.Amount, opts)
	if err != nil {
		return CheckoutResponse{}, fmt.Errorf("init payment: %w", err)
	}

	detail, err := p.pollVerification(ctx, txRef)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			resp := CheckoutResponse{
				TxRef:       txRef,
				CheckoutURL: checkout.CheckoutURL,
				Status:      string(chapa.StatusPending),
				Verified:    false,
				Message:     "payment not verified before timeout",
				Request:     event,
			}
			p.emitCallback(ctx, resp)
			return resp, nil
		}
		return CheckoutResponse{}, err
	}

	resp := CheckoutResponse{
		TxRef:       txRef,
		CheckoutURL: checkout.CheckoutURL,
		Status:      detail.Status,
		Verified:    true,
		Payment:     detail,
		Request:     event,
	}
	p.emitCallback(ctx, resp)
	return resp, nil
}

func (p *Processor) pollVerification(ctx context.Context, txRef string) (*chapa.PaymentDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		detail, err := p.client.VerifyTransaction(ctx, txRef)
		switch {
		case err == nil && detail.Status == string(chapa.StatusSuccess):
			p.log.Info().Str("tx_ref", txRef).Msg("payment verified")
			return detail, nil
		case err != nil && !notSettledYet(err):
			return nil, err
		}

		p.log.Debug().Str("tx_ref", txRef).Dur("wait", p.pollInterval).Msg("payment not settled yet")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// notSettledYet treats a 404 as "keep polling": Chapa materializes the
// transaction record only after the payer completes checkout.
func notSettledYet(err error) bool {
	var apiErr *chapa.APIError
	return errors.As(err, &apiErr) && apiErr.Response.StatusCode == http.StatusNotFound
}

func validateEvent(event CheckoutEvent) error {
	if event.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (p *Processor) emitCallback(ctx context.Context, resp CheckoutResponse) {
	if p.callback == nil {
		return
	}
	if err := p.callback.Send(ctx, resp); err != nil {
		p.log.Error().Err(err).Str("tx_ref", resp.TxRef).Msg("callback delivery failed")
	}
}
