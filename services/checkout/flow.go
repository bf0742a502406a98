package checkout

import (
	"context"
	"errors"
	"time"

	"islandstay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCheckoutService implements CheckoutService. One session is owned by
// one flow instance; no concurrent prebook/book calls are issued for the same
// session.
type DefaultCheckoutService struct {
	Gateway  ProviderGateway
	Store    SessionStore
	Payments PaymentProvider
	Logger   *zap.Logger
}

// Start creates a session for the selected rate and price-locks it. On
// prebook failure the session stays in room selection with the error
// attached, so the user can pick again.
func (s *DefaultCheckoutService) Start(ctx context.Context, sel RateSelection) (*models.CheckoutSession, error) {
	if sel.OfferID == "" {
		return nil, NewSelectionError("offerId is required")
	}
	if sel.HotelID == "" {
		return nil, NewSelectionError("hotelId is required")
	}

	session := &models.CheckoutSession{
		SessionID:    uuid.New().String(),
		State:        models.StateAwaitingPrebook,
		HotelID:      sel.HotelID,
		OfferID:      sel.OfferID,
		Checkin:      sel.Checkin,
		Checkout:     sel.Checkout,
		Guests:       sel.Guests,
		WantsCardSDK: sel.UsePaymentSdk,
		CreatedAt:    time.Now(),
	}

	result, err := s.Gateway.Prebook(ctx, models.PrebookParams{
		OfferID:       sel.OfferID,
		UsePaymentSdk: sel.UsePaymentSdk,
		VoucherCode:   sel.VoucherCode,
	})
	if err != nil {
		s.Logger.Error("prebook failed", zap.String("offerId", sel.OfferID), zap.Error(err))
		session.State = models.StateSelectingRoom
		session.LastError = err.Error()
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err
	}

	session.PrebookID = result.PrebookID
	session.Price = result.Price
	session.TransactionID = result.TransactionID
	session.SecretKey = result.SecretKey
	if result.HotelID != "" {
		session.HotelID = result.HotelID
	}
	session.State = models.StateGuestInfo

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("checkout session started",
		zap.String("sessionId", session.SessionID),
		zap.String("prebookId", session.PrebookID),
		zap.Bool("paymentSdk", session.PaymentSDKEnabled()))
	return session, nil
}

// SubmitGuestInfo captures the holder data and advances the flow: into the
// payment step when a transaction/secret pair is present, otherwise straight
// to booking.
func (s *DefaultCheckoutService) SubmitGuestInfo(ctx context.Context, sessionID string, guest models.GuestInfo) (*models.CheckoutSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.State {
	case models.StateGuestInfo:
	case models.StateProcessing:
		return session, NewInvalidStateError("a booking attempt is already in progress")
	default:
		return session, NewInvalidStateError("session has no active prebook")
	}
	if err := guest.Validate(); err != nil {
		return session, err
	}

	session.Guest = &guest
	session.LastError = ""

	handle, err := s.Payments.Mount(ctx, PaymentConfig{
		TransactionID: session.TransactionID,
		SecretKey:     session.SecretKey,
		Amount:        session.Price.Total,
		Currency:      session.Price.Currency,
		CollectCard:   session.WantsCardSDK,
	})
	if errors.Is(err, ErrNoPaymentRequired) {
		return s.book(ctx, session)
	}
	if err != nil {
		session.LastError = err.Error()
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err
	}

	session.PaymentHandle = handle
	session.TransactionID = handle.TransactionID
	if handle.SecretKey != "" {
		session.SecretKey = handle.SecretKey
	}
	session.PaymentMounted = true
	session.State = models.StatePayment
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompletePayment is the widget's payment-completed signal. The payment is
// verified and torn down, then the booking is created.
func (s *DefaultCheckoutService) CompletePayment(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StatePayment {
		return session, NewInvalidStateError("session is not awaiting payment")
	}

	if err := s.Payments.Verify(ctx, session.PaymentHandle); err != nil {
		return s.paymentFailed(ctx, session, err.Error())
	}

	s.Payments.Unmount(ctx, session.PaymentHandle)
	session.PaymentMounted = false
	return s.book(ctx, session)
}

// FailPayment is the widget's payment-error signal. The flow returns to the
// guest-info step; the payment step is never re-entered without a fresh guest
// submission.
func (s *DefaultCheckoutService) FailPayment(ctx context.Context, sessionID, message string) (*models.CheckoutSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StatePayment {
		return session, NewInvalidStateError("session is not awaiting payment")
	}
	if message == "" {
		message = "payment failed"
	}
	return s.paymentFailed(ctx, session, message)
}

func (s *DefaultCheckoutService) paymentFailed(ctx context.Context, session *models.CheckoutSession, message string) (*models.CheckoutSession, error) {
	s.Payments.Unmount(ctx, session.PaymentHandle)
	session.PaymentHandle = nil
	session.PaymentMounted = false
	session.State = models.StateGuestInfo
	session.LastError = message
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, &FlowError{Code: "paymentError", Message: message}
}

// book runs the final provider call. A failure returns the flow to guest-info
// with the prebookId and guest input preserved: a retry reuses the same
// prebookId and is never re-prebooked.
func (s *DefaultCheckoutService) book(ctx context.Context, session *models.CheckoutSession) (*models.CheckoutSession, error) {
	session.State = models.StateProcessing
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	payment := models.PaymentInfo{Method: "card", TransactionID: session.TransactionID}
	if session.PaymentHandle != nil {
		if session.PaymentHandle.Provider == "widget" {
			payment.Method = "sdk"
		}
	} else if session.PaymentSDKEnabled() {
		payment.Method = "sdk"
	}

	guest := session.Guest
	booking, err := s.Gateway.CreateBooking(ctx, models.BookingParams{
		PrebookID: session.PrebookID,
		Holder: models.BookingHolder{
			FirstName: guest.FirstName,
			LastName:  guest.LastName,
			Email:     guest.Email,
			Phone:     guest.Phone,
		},
		Payment:         payment,
		SpecialRequests: guest.SpecialRequests,
	})
	if err != nil {
		s.Logger.Error("booking failed",
			zap.String("sessionId", session.SessionID),
			zap.String("prebookId", session.PrebookID),
			zap.Error(err))
		session.State = models.StateGuestInfo
		session.LastError = err.Error()
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err
	}

	// The session is consumed exactly once, at the moment the booking exists.
	if err := s.Store.Delete(ctx, session.SessionID); err != nil {
		s.Logger.Warn("failed to clear confirmed session",
			zap.String("sessionId", session.SessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("sessionId", session.SessionID),
		zap.String("bookingId", booking.BookingID))
	return &models.CheckoutSession{
		SessionID: session.SessionID,
		State:     models.StateConfirmed,
		BookingID: booking.BookingID,
		CreatedAt: session.CreatedAt,
		UpdatedAt: time.Now(),
	}, nil
}

// GetSession returns the current session state.
func (s *DefaultCheckoutService) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// Abandon is the explicit navigated-away exit. Any mounted payment is torn
// down before the session is dropped.
func (s *DefaultCheckoutService) Abandon(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.PaymentMounted {
		s.Payments.Unmount(ctx, session.PaymentHandle)
	}
	return s.Store.Delete(ctx, sessionID)
}
