package api

import (
	"context"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/commands"
	"staykit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type paymentLinkRequestDTO struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	BuyerName   string `json:"buyerName"`
	BuyerEmail  string `json:"buyerEmail"`
	BuyerPhone  string `json:"buyerPhone"`
	ReturnURL   string `json:"returnUrl"`
	CancelURL   string `json:"cancelUrl"`
}

// PaymentClient talks to the payment-link provider proxy. The response
// is passed through untouched: the caller renders exactly what the
// provider issued.
type PaymentClient struct {
	client *transport.Client
}

func NewPaymentClient(client *transport.Client) *PaymentClient {
	return &PaymentClient{client: client}
}

func (c *PaymentClient) CreatePaymentLink(ctx context.Context, req commands.PaymentLinkRequest) (*queries.PaymentLinkView, error) {
	dto := paymentLinkRequestDTO{}
	if err := copier.Copy(&dto, &req); err != nil {
		return nil, errs.Wrap(err, "failed to map payment link request")
	}

	var envelope dataEnvelope[queries.PaymentLinkView]
	if err := c.client.Post(ctx, "/api/payments/links", dto, &envelope); err != nil {
		if transport.IsValidation(err) || transport.IsServer(err) {
			return nil, errs.Mark(err, errs.ErrPaymentRejected)
		}
		return nil, err
	}
	return &envelope.Data, nil
}
