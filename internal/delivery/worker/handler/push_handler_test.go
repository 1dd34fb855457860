package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buyhive/config"
	deliverycontext "buyhive/internal/delivery/context"
	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/service"
	mockUsecase "buyhive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockShareDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockShareDeliveryUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: deliveryUC,
	})

	return h, deliveryUC
}

func pushBody(t *testing.T, event *service.CartSharedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/cart-shared-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func testEvent() *service.CartSharedEvent {
	return &service.CartSharedEvent{
		EventID:        "evt-1",
		RecipientEmail: "bob@example.com",
		SenderName:     "Alice",
		Snapshot: entity.CartSnapshot{
			Cart:  &entity.Cart{CartID: "c1", CartName: "Weekly"},
			Items: []*entity.Item{{ItemID: "i1", Name: "Milk"}},
		},
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		deliverErr error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{
			name:       "invalid event is acked",
			deliverErr: errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("recipient email is missing"), "deliver"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "send failure is retried",
			deliverErr: errors.New("sendgrid: 502"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deliveryUC := newTestPushHandler(t, &config.Config{})

			deliveryUC.EXPECT().
				DeliverCartShared(mock.Anything, mock.MatchedBy(func(e *service.CartSharedEvent) bool {
					return e.EventID == "evt-1" && e.Snapshot.Cart.CartID == "c1" && len(e.Snapshot.Items) == 1
				})).
				Return(tt.deliverErr)

			rec := servePush(h, pushBody(t, testEvent(), nil), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	h, deliveryUC := newTestPushHandler(t, &config.Config{})

	event := testEvent()
	event.RequestID = "from-event"

	deliveryUC.EXPECT().DeliverCartShared(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.CartSharedEvent) {
			assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifyPushToken(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{
		VerifyPushToken: true,
		PushAudience:    "https://mail.example.com/push",
	}}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := servePush(h, pushBody(t, testEvent(), nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, testEvent(), nil), http.Header{"Authorization": {"Bearer tok"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, deliveryUC := newTestPushHandler(t, cfg)

		var gotAudience string
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			if token != "tok" {
				return nil, errors.New("bad token")
			}

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		deliveryUC.EXPECT().DeliverCartShared(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, testEvent(), nil), http.Header{"Authorization": {"Bearer tok"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://mail.example.com/push", gotAudience)
	})
}
