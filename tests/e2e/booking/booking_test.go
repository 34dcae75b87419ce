//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"decor-booking/internal/domain/account"
	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/tests/common/authtest"
	"decor-booking/tests/common/builder"
	"decor-booking/tests/common/dbtest"
	"decor-booking/tests/common/httptest"
	"decor-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/bookings"
	checkoutURL      = "/payment-checkout-session"
	paymentSuccess   = "/payment-success?session_id=%s"
	customerEmail    = "customer@example.com"
	checkoutPagePath = "https://checkout.test/pay/"
)

type BookingSuite struct {
	e2e.SharedSuite
	tokens *authtest.TokenHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewTokenHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createBooking(token string, serviceID uuid.UUID, date string) *resdto.InsertResponse {
	t := s.T()
	body := builder.NewBookingBuilder().
		WithService(serviceID, "Wedding Stage Decoration", decimal.RequireFromString("15000.50")).
		With(func(b *builder.BookingBuilder) { b.Date = date }).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.InsertResponse
	httptest.DecodeResponseBody(t, w, &resp)
	return &resp
}

func (s *BookingSuite) TestBookingAndPaymentFlow() {
	s.Run("customer books, pays and confirms once", func() {
		t := s.T()

		token := s.tokens.RegisterUser(t, s.Router, customerEmail)
		serviceID := dbtest.CreateTestService(t, s.DB, "Wedding Stage Decoration", decimal.RequireFromString("15000.50"))

		created := s.createBooking(token, serviceID, "2025-12-24")
		require.True(t, created.Acknowledged)
		require.NotNil(t, created.InsertedID)
		bookingID := *created.InsertedID

		dup := s.createBooking(token, serviceID, "2025-12-24")
		require.False(t, dup.Acknowledged)
		require.Nil(t, dup.InsertedID)
		require.Equal(t, "already booked", dup.Message)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqdto.CheckoutSessionRequest{
			BookingID:   bookingID.String(),
			Cost:        decimal.RequireFromString("15000.50"),
			ServiceName: "Wedding Stage Decoration",
		}, token)
		var session resdto.CheckoutSessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &session)
		require.True(t, strings.HasPrefix(session.URL, checkoutPagePath), session.URL)
		sessionID := strings.TrimPrefix(session.URL, checkoutPagePath)

		requests := e2e.Gateway.Requests()
		require.NotEmpty(t, requests)
		require.EqualValues(t, 1500050, requests[len(requests)-1].AmountMinor)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(paymentSuccess, sessionID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.JSONEq(t, `{"success":false,"message":"Payment status not 'paid'."}`, w.Body.String())

		intent := e2e.Gateway.Pay(sessionID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(paymentSuccess, sessionID), nil, token)
		var confirmed resdto.PaymentSuccessResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.True(t, confirmed.Success)
		require.False(t, confirmed.AlreadyProcessed)
		require.Equal(t, intent, confirmed.TransactionID)
		require.NotNil(t, confirmed.ModifyBooking)
		require.EqualValues(t, 1, confirmed.ModifyBooking.ModifiedCount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(paymentSuccess, sessionID), nil, token)
		var again resdto.PaymentSuccessResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		require.True(t, again.AlreadyProcessed)
		require.Equal(t, intent, again.TransactionID)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM payments WHERE transaction_id = $1", intent))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID.String(), nil, token)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := resdto.BookingResponse{
			ID:            bookingID,
			ServiceID:     serviceID,
			ServiceName:   "Wedding Stage Decoration",
			Price:         decimal.RequireFromString("15000.50"),
			CustomerEmail: customerEmail,
			CustomerName:  "Test Customer",
			Date:          "2025-12-24",
			Address:       "House 12, Road 5, Dhanmondi, Dhaka",
			Status:        "paid",
			TransactionID: &intent,
		}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "CreatedAt", "UpdatedAt"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/payments?email="+customerEmail, nil, token)
		var payments []resdto.PaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &payments)
		require.Len(t, payments, 1)
		require.True(t, payments[0].Amount.Equal(decimal.RequireFromString("15000.50")))

		published, err := e2e.Relay.RelayOnce(context.Background())
		require.NoError(t, err)
		require.GreaterOrEqual(t, published, 2)
	})

	s.Run("canceled booking frees the slot", func() {
		t := s.T()

		token := s.tokens.RegisterUser(t, s.Router, customerEmail)
		serviceID := dbtest.CreateTestService(t, s.DB, "Wedding Stage Decoration", decimal.RequireFromString("15000.50"))

		first := s.createBooking(token, serviceID, "2026-01-10")
		require.NotNil(t, first.InsertedID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+first.InsertedID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		second := s.createBooking(token, serviceID, "2026-01-10")
		require.True(t, second.Acknowledged)
		require.NotNil(t, second.InsertedID)
		require.NotEqual(t, *first.InsertedID, *second.InsertedID)
	})
}

func (s *BookingSuite) TestAssignmentFlow() {
	s.Run("admin assigns a decorator who advances the work", func() {
		t := s.T()

		customerToken := s.tokens.RegisterUser(t, s.Router, customerEmail)
		_, adminToken := s.tokens.CreateStaff(t, s.DB, "admin@example.com", account.RoleAdmin)
		decoratorID, decoratorToken := s.tokens.CreateStaff(t, s.DB, "deco@example.com", account.RoleDecorator)
		serviceID := dbtest.CreateTestService(t, s.DB, "Wedding Stage Decoration", decimal.RequireFromString("15000.50"))

		created := s.createBooking(customerToken, serviceID, "2026-02-14")
		require.NotNil(t, created.InsertedID)
		bookingID := *created.InsertedID
		assignURL := "/bookings/assign/" + bookingID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, assignURL,
			reqdto.AssignDecoratorRequest{DecoratorID: decoratorID.String()}, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, "pending bookings cannot be assigned")

		dbtest.SetBookingTransaction(t, s.DB, bookingID, "pi_manual")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, assignURL,
			reqdto.AssignDecoratorRequest{DecoratorID: decoratorID.String()}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, assignURL,
			reqdto.AssignDecoratorRequest{DecoratorID: decoratorID.String()}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, "/bookings/status/"+bookingID.String(),
			reqdto.UpdateWorkStatusRequest{Status: "Planning Phase"}, decoratorToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/decorator/deco@example.com", nil, decoratorToken)
		var assigned []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &assigned)
		require.Len(t, assigned, 1)
		require.Equal(t, "Planning Phase", assigned[0].Status)
		require.NotNil(t, assigned[0].DecoratorEmail)
		require.Equal(t, "deco@example.com", *assigned[0].DecoratorEmail)
	})

	s.Run("admin routes reject other roles", func() {
		t := s.T()

		_, decoratorToken := s.tokens.CreateStaff(t, s.DB, "deco@example.com", account.RoleDecorator)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/admin/bookings", nil, decoratorToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden access")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized access")

		expired := s.tokens.ExpiredTokenFor(t, "deco@example.com")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/decorator/deco@example.com", nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
