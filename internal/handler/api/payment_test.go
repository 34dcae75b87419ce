//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"decor-booking/internal/domain/payment"
	"decor-booking/internal/handler/api"
	reqdto "decor-booking/internal/handler/dto/request"
	resdto "decor-booking/internal/handler/dto/response"
	"decor-booking/internal/usecase/commands"
	"decor-booking/internal/usecase/queries"
	"decor-booking/tests/common/httptest"
	commandsmock "decor-booking/tests/mock/commands"
	queriesmock "decor-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/payment-checkout-session", fakeAuth, handler.CreateCheckoutSession)
	s.router.PATCH("/payment-success", fakeAuth, handler.ConfirmPayment)
	s.router.GET("/payments", fakeAuth, handler.ListByCustomer)
}

func (s *PaymentHandlerTestSuite) TestCreateCheckoutSession() {
	bookingID := uuid.New()
	body := reqdto.CheckoutSessionRequest{
		BookingID:   bookingID.String(),
		Cost:        decimal.RequireFromString("15000.50"),
		ServiceName: "Wedding Stage Decoration",
	}

	s.Run("returns the hosted page url", func() {
		s.mockCommands.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any(), principalEmail).
			DoAndReturn(func(_ context.Context, req commands.CheckoutSessionRequest, _ string) (*commands.CheckoutSessionResult, error) {
				s.Equal(bookingID.String(), req.BookingID)
				s.True(req.Cost.Equal(decimal.RequireFromString("15000.50")))
				return &commands.CheckoutSessionResult{SessionID: "cs_1", URL: "https://checkout.test/cs_1"}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-checkout-session", body, "token")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"url":"https://checkout.test/cs_1"}`, w.Body.String())
	})

	s.Run("booking id is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-checkout-session",
			map[string]any{"cost": 100}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("booking already paid", func() {
		s.mockCommands.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any(), principalEmail).
			Return(nil, commands.ErrInvalidTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-checkout-session", body, "token")
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *PaymentHandlerTestSuite) TestConfirmPayment() {
	bookingID := uuid.New()
	p := payment.ReconstructPayment(uuid.New(), "pi_1", bookingID, principalEmail, "Stage",
		decimal.RequireFromString("15000.50"), "bdt", payment.StatusPaid, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	s.Run("confirmed", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").Return(&commands.ConfirmPaymentResult{
			Outcome:         commands.OutcomeConfirmed,
			TransactionID:   "pi_1",
			Payment:         p,
			BookingModified: 1,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_1", nil, "token")

		var resp resdto.PaymentSuccessResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Success)
		s.False(resp.AlreadyProcessed)
		s.Equal("pi_1", resp.TransactionID)
		s.Require().NotNil(resp.ModifyBooking)
		s.EqualValues(1, resp.ModifyBooking.ModifiedCount)
		s.Require().NotNil(resp.PaymentInfo)
		s.Equal(bookingID, resp.PaymentInfo.BookingID)
	})

	s.Run("already processed", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").Return(&commands.ConfirmPaymentResult{
			Outcome:       commands.OutcomeAlreadyProcessed,
			TransactionID: "pi_1",
			Payment:       p,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_1", nil, "token")

		var resp resdto.PaymentSuccessResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Success)
		s.True(resp.AlreadyProcessed)
		s.Equal("already exists", resp.Message)
		s.Nil(resp.ModifyBooking)
	})

	s.Run("not paid", func() {
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").
			Return(&commands.ConfirmPaymentResult{Outcome: commands.OutcomeNotPaid}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_1", nil, "token")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"success":false,"message":"Payment status not 'paid'."}`, w.Body.String())
	})

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unknown session", commands.ErrSessionNotFound, http.StatusNotFound, "Checkout session not found"},
		{"metadata missing", commands.ErrMetadataMissing, http.StatusUnprocessableEntity, "Booking ID missing in metadata"},
		{"in progress elsewhere", commands.ErrConfirmationInProgress, http.StatusConflict, "already in progress"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").Return(nil, tt.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success?session_id=cs_1", nil, "token")
			httptest.AssertErrorResponse(s.T(), w, tt.status, tt.msg)
		})
	}

	s.Run("session id is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/payment-success", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "session_id is required")
	})
}

func (s *PaymentHandlerTestSuite) TestListByCustomer() {
	views := []*queries.PaymentView{{
		ID:            uuid.New(),
		TransactionID: "pi_1",
		BookingID:     uuid.New(),
		CustomerEmail: principalEmail,
		ServiceName:   "Stage",
		Amount:        decimal.RequireFromString("15000.50"),
		Currency:      "bdt",
		Status:        payment.StatusPaid,
		PaidAt:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
	s.mockQueries.EXPECT().ListCustomerPayments(gomock.Any(), principalEmail).Return(views, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments?email="+principalEmail, nil, "token")

	var resp []resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("pi_1", resp[0].TransactionID)
	s.Equal("paid", resp[0].Status)
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
