//go:build unit || e2e

package fakes

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"decor-booking/internal/usecase/commands"
)

// CheckoutGateway is an in-memory hosted checkout provider. Sessions start unpaid
// until Pay is called.
type CheckoutGateway struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]*commands.CheckoutSession
	requests []commands.CheckoutRequest
	gets     int
	latency  time.Duration
}

func NewCheckoutGateway() *CheckoutGateway {
	return &CheckoutGateway{sessions: make(map[string]*commands.CheckoutSession)}
}

func (g *CheckoutGateway) CreateSession(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++
	id := fmt.Sprintf("cs_test_%d", g.seq)
	s := &commands.CheckoutSession{
		ID:            id,
		URL:           "https://checkout.test/pay/" + id,
		PaymentStatus: "unpaid",
		AmountTotal:   req.AmountMinor,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		Metadata: map[string]string{
			"bookingId":   req.BookingID,
			"serviceName": req.ServiceName,
		},
	}
	g.sessions[id] = s
	g.requests = append(g.requests, req)
	return clone(s), nil
}

// SetLatency delays every GetSession answer by d.
func (g *CheckoutGateway) SetLatency(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latency = d
}

func (g *CheckoutGateway) GetSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	g.gets++
	latency := g.latency
	g.mu.Unlock()

	if latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(latency):
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return nil, commands.ErrSessionNotFound
	}
	return clone(s), nil
}

func (g *CheckoutGateway) FindSessionByPaymentIntent(_ context.Context, paymentIntentID string) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range g.sessions {
		if s.PaymentIntentID != "" && s.PaymentIntentID == paymentIntentID {
			return clone(s), nil
		}
	}
	return nil, commands.ErrSessionNotFound
}

// Pay completes the session and returns its payment intent id.
func (g *CheckoutGateway) Pay(sessionID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[sessionID]
	if !ok {
		return ""
	}
	if s.PaymentIntentID == "" {
		s.PaymentIntentID = "pi_" + sessionID
	}
	s.PaymentStatus = commands.PaymentStatusPaid
	return s.PaymentIntentID
}

// StartPayment attaches a payment intent without marking the session paid.
func (g *CheckoutGateway) StartPayment(sessionID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[sessionID]
	if !ok {
		return ""
	}
	s.PaymentIntentID = "pi_" + sessionID
	return s.PaymentIntentID
}

// Put stores s as is, replacing any session with the same id.
func (g *CheckoutGateway) Put(s commands.CheckoutSession) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[s.ID] = clone(&s)
}

func (g *CheckoutGateway) Requests() []commands.CheckoutRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]commands.CheckoutRequest, len(g.requests))
	copy(out, g.requests)
	return out
}

// Lookups counts GetSession calls.
func (g *CheckoutGateway) Lookups() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gets
}

func clone(s *commands.CheckoutSession) *commands.CheckoutSession {
	cp := *s
	cp.Metadata = maps.Clone(s.Metadata)
	return &cp
}
