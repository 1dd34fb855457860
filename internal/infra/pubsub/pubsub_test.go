package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"buyhive/config"
	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sharedEvent() *service.CartSharedEvent {
	return &service.CartSharedEvent{
		EventID:        "evt-1",
		RequestID:      "req-1",
		RecipientEmail: "bob@example.com",
		SenderName:     "Alice",
		Snapshot: entity.CartSnapshot{
			Cart:  &entity.Cart{CartID: "c1", CartName: "Weekly"},
			Items: []*entity.Item{{ItemID: "i1", Name: "Milk"}},
		},
	}
}

func TestEncodeCartShared(t *testing.T) {
	data, attributes, err := encodeCartShared(sharedEvent())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": EventTypeCartShared,
		"cart_id":    "c1",
		"request_id": "req-1",
	}, attributes)

	var decoded service.CartSharedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "bob@example.com", decoded.RecipientEmail)
	assert.Equal(t, "Weekly", decoded.Snapshot.Cart.CartName)

	_, _, err = encodeCartShared(&service.CartSharedEvent{})
	require.Error(t, err)
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushEnvelope
	var gotRequestID string
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer worker.Close()

	publisher := NewLocalHTTPPublisher(worker.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishCartSharedEvent(context.Background(), sharedEvent()))

	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "c1", got.Message.Attributes["cart_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var event service.CartSharedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "evt-1", event.EventID)
	require.Len(t, event.Snapshot.Items, 1)
}

func TestLocalHTTPPublisher_WorkerRejects(t *testing.T) {
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer worker.Close()

	publisher := NewLocalHTTPPublisher(worker.URL, newDiscardLogger())
	err := publisher.PublishCartSharedEvent(context.Background(), sharedEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{name: "unconfigured is noop", wantNoop: true},
		{name: "explicit noop", cfg: &config.PubSubConfig{Provider: "noop"}, wantNoop: true},
		{name: "local needs endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google needs project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}
