package checkout

import (
	"context"
	"errors"
	"net/http"

	"decor-booking/internal/pkg/errs"
	"decor-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const (
	metadataBookingID   = "bookingId"
	metadataServiceName = "serviceName"
	productNamePrefix   = "Booking for: "
)

// StripeGateway opens and reads hosted checkout sessions.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productNamePrefix + req.ServiceName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, req.BookingID)
	params.AddMetadata(metadataServiceName, req.ServiceName)

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if isNotFound(err) {
			return nil, commands.ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "retrieve checkout session")
	}
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) FindSessionByPaymentIntent(ctx context.Context, paymentIntentID string) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := g.api.CheckoutSessions.List(params)
	if iter.Next() {
		return toCheckoutSession(iter.CheckoutSession()), nil
	}
	if err := iter.Err(); err != nil {
		return nil, errs.Wrap(err, "list checkout sessions")
	}
	return nil, commands.ErrSessionNotFound
}

func toCheckoutSession(s *stripe.CheckoutSession) *commands.CheckoutSession {
	out := &commands.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}

func isNotFound(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing
	}
	return false
}
