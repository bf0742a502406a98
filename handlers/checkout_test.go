package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"islandstay/liteapi"
	"islandstay/models"
	"islandstay/services/checkout"
)

type mockCheckoutService struct {
	startFn    func(sel checkout.RateSelection) (*models.CheckoutSession, error)
	guestFn    func(sessionID string, guest models.GuestInfo) (*models.CheckoutSession, error)
	completeFn func(sessionID string) (*models.CheckoutSession, error)
	failFn     func(sessionID, message string) (*models.CheckoutSession, error)
	getFn      func(sessionID string) (*models.CheckoutSession, error)
	abandonFn  func(sessionID string) error
}

func (m *mockCheckoutService) Start(ctx context.Context, sel checkout.RateSelection) (*models.CheckoutSession, error) {
	return m.startFn(sel)
}

func (m *mockCheckoutService) SubmitGuestInfo(ctx context.Context, sessionID string, guest models.GuestInfo) (*models.CheckoutSession, error) {
	return m.guestFn(sessionID, guest)
}

func (m *mockCheckoutService) CompletePayment(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return m.completeFn(sessionID)
}

func (m *mockCheckoutService) FailPayment(ctx context.Context, sessionID, message string) (*models.CheckoutSession, error) {
	return m.failFn(sessionID, message)
}

func (m *mockCheckoutService) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return m.getFn(sessionID)
}

func (m *mockCheckoutService) Abandon(ctx context.Context, sessionID string) error {
	return m.abandonFn(sessionID)
}

func checkoutRouter(svc checkout.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &CheckoutHandler{Service: svc}
	r.POST("/api/checkout/session", h.StartSession)
	r.GET("/api/checkout/session/:sessionID", h.GetSession)
	r.POST("/api/checkout/session/:sessionID/guest", h.SubmitGuestInfo)
	r.POST("/api/checkout/session/:sessionID/payment/complete", h.CompletePayment)
	r.POST("/api/checkout/session/:sessionID/payment/fail", h.FailPayment)
	return r
}

func TestStartSessionReturnsSnapshot(t *testing.T) {
	svc := &mockCheckoutService{
		startFn: func(sel checkout.RateSelection) (*models.CheckoutSession, error) {
			return &models.CheckoutSession{SessionID: "s1", State: models.StateGuestInfo, PrebookID: "pb_1"}, nil
		},
	}
	router := checkoutRouter(svc)

	body, _ := json.Marshal(map[string]any{"hotelId": "lp3a56d", "offerId": "offer_123456"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Session models.CheckoutSession `json:"session"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Session.State != models.StateGuestInfo {
		t.Errorf("unexpected session %+v", resp.Session)
	}
}

func TestStartSessionPrebookFailureReturnsBadGatewayWithSession(t *testing.T) {
	svc := &mockCheckoutService{
		startFn: func(sel checkout.RateSelection) (*models.CheckoutSession, error) {
			session := &models.CheckoutSession{
				SessionID: "s1",
				State:     models.StateSelectingRoom,
				LastError: "rate no longer available",
			}
			return session, &liteapi.ProviderError{Status: 410, Message: "rate no longer available"}
		},
	}
	router := checkoutRouter(svc)

	body, _ := json.Marshal(map[string]any{"hotelId": "lp3a56d", "offerId": "offer_123456"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var resp struct {
		Session models.CheckoutSession `json:"session"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Session.State != models.StateSelectingRoom {
		t.Errorf("expected session snapshot in error body, got %+v", resp.Session)
	}
}

func TestStartSessionInvalidSelectionIs400(t *testing.T) {
	svc := &mockCheckoutService{
		startFn: func(sel checkout.RateSelection) (*models.CheckoutSession, error) {
			return nil, checkout.NewSelectionError("offerId is required")
		},
	}
	router := checkoutRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session", bytes.NewReader([]byte(`{}`)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetSessionUnknownIDIs404(t *testing.T) {
	svc := &mockCheckoutService{
		getFn: func(sessionID string) (*models.CheckoutSession, error) {
			return nil, checkout.ErrSessionNotFound
		},
	}
	router := checkoutRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checkout/session/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSubmitGuestForwardsSessionID(t *testing.T) {
	var gotSession string
	svc := &mockCheckoutService{
		guestFn: func(sessionID string, guest models.GuestInfo) (*models.CheckoutSession, error) {
			gotSession = sessionID
			return &models.CheckoutSession{SessionID: sessionID, State: models.StateConfirmed, BookingID: "bk_1"}, nil
		},
	}
	router := checkoutRouter(svc)

	body, _ := json.Marshal(models.GuestInfo{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/s1/guest", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotSession != "s1" {
		t.Errorf("expected session id s1, got %q", gotSession)
	}
}

func TestPaymentFailureIs402WithSession(t *testing.T) {
	svc := &mockCheckoutService{
		completeFn: func(sessionID string) (*models.CheckoutSession, error) {
			session := &models.CheckoutSession{SessionID: sessionID, State: models.StateGuestInfo, LastError: "card declined"}
			return session, &checkout.FlowError{Code: "paymentError", Message: "card declined"}
		},
	}
	router := checkoutRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/s1/payment/complete", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", w.Code)
	}
	var resp struct {
		Session models.CheckoutSession `json:"session"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Session.State != models.StateGuestInfo {
		t.Errorf("expected guest_info snapshot, got %+v", resp.Session)
	}
}

func TestFailPaymentPassesMessage(t *testing.T) {
	var gotMessage string
	svc := &mockCheckoutService{
		failFn: func(sessionID, message string) (*models.CheckoutSession, error) {
			gotMessage = message
			session := &models.CheckoutSession{SessionID: sessionID, State: models.StateGuestInfo}
			return session, &checkout.FlowError{Code: "paymentError", Message: message}
		},
	}
	router := checkoutRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/s1/payment/fail",
		bytes.NewReader([]byte(`{"message":"widget reported failure"}`)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusPaymentRequired {
		t.Errorf("expected 402, got %d", w.Code)
	}
	if gotMessage != "widget reported failure" {
		t.Errorf("message not forwarded, got %q", gotMessage)
	}
}

func TestInvalidStateIs409(t *testing.T) {
	svc := &mockCheckoutService{
		completeFn: func(sessionID string) (*models.CheckoutSession, error) {
			session := &models.CheckoutSession{SessionID: sessionID, State: models.StateGuestInfo}
			return session, checkout.NewInvalidStateError("session is not awaiting payment")
		},
	}
	router := checkoutRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session/s1/payment/complete", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}
