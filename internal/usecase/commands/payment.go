package commands

import (
	"context"
	"fmt"
	"log/slog"

	"staykit/internal/auth"
	"staykit/internal/pkg/clock"
	"staykit/internal/pkg/config"
	"staykit/internal/pkg/errs"
)

// minorUnitsPerMajor is the provider's fixed amount scale: booking
// amounts are tracked in minor units, the provider bills in major units.
const minorUnitsPerMajor = 100

var ErrInvalidAmount = errs.New("invalid payment amount")

// PaymentCommands is the payment-link orchestrator. The request is
// derived deterministically from the signed-in profile and the supplied
// booking code/amount; failures are surfaced as-is and never retried
// here — idempotency is the caller's choice via a fresh order code.
type PaymentCommands interface {
	CreatePaymentLink(ctx context.Context, bookingCode string, amountMinor int64) (*PaymentLinkResult, error)
}

type PaymentLinkResult struct {
	OrderCode     int64
	Amount        int64
	Description   string
	Bin           string
	AccountNumber string
	AccountName   string
	QRCode        string
	CheckoutURL   string
	Status        string
}

type paymentCommandsImpl struct {
	endpoints PaymentEndpoints
	gate      *auth.Gate
	cfg       config.PaymentConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPaymentCommands(
	endpoints PaymentEndpoints,
	gate *auth.Gate,
	cfg config.PaymentConfig,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		endpoints: endpoints,
		gate:      gate,
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
	}
}

func (p *paymentCommandsImpl) CreatePaymentLink(ctx context.Context, bookingCode string, amountMinor int64) (*PaymentLinkResult, error) {
	if amountMinor <= 0 || amountMinor%minorUnitsPerMajor != 0 {
		return nil, errs.Mark(
			errs.Newf("amount %d is not a positive multiple of %d", amountMinor, minorUnitsPerMajor),
			ErrInvalidAmount,
		)
	}

	identity, ok := p.gate.Identity()
	if !ok {
		return nil, errs.ErrNotAuthenticated
	}
	if !identity.HasProfile() {
		return nil, errs.ErrProfileMissing
	}

	req := PaymentLinkRequest{
		OrderCode:   p.clock.Now().UnixMilli(),
		Amount:      amountMinor / minorUnitsPerMajor,
		Description: fmt.Sprintf("Booking %s", bookingCode),
		BuyerName:   identity.Profile.FullName,
		BuyerEmail:  identity.Profile.Email,
		BuyerPhone:  identity.Profile.Phone,
		ReturnURL:   p.cfg.ReturnURL,
		CancelURL:   p.cfg.CancelURL,
	}

	view, err := p.endpoints.CreatePaymentLink(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "payment link creation failed")
	}

	p.logger.Info("payment link created", "order_code", view.OrderCode, "booking_code", bookingCode)
	return &PaymentLinkResult{
		OrderCode:     view.OrderCode,
		Amount:        view.Amount,
		Description:   view.Description,
		Bin:           view.Bin,
		AccountNumber: view.AccountNumber,
		AccountName:   view.AccountName,
		QRCode:        view.QRCode,
		CheckoutURL:   view.CheckoutURL,
		Status:        view.Status,
	}, nil
}
