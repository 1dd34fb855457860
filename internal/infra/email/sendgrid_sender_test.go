package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"buyhive/config"
	"buyhive/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendGridSender_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendGridMailPath, r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender, err := NewSendGridSender("sg-key", "noreply@buyhive.test", "BuyHive", discardLogger())
	require.NoError(t, err)
	sender.host = server.URL

	err = sender.Send(context.Background(), &service.EmailMessage{
		ToEmail:  "bob@example.com",
		Subject:  "Your Shared Cart: Groceries",
		HTMLBody: "<p>hi</p>",
		TextBody: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Shared Cart: Groceries", received["subject"])
	from, ok := received["from"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "noreply@buyhive.test", from["email"])
}

func TestSendGridSender_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	sender, err := NewSendGridSender("sg-key", "noreply@buyhive.test", "BuyHive", discardLogger())
	require.NoError(t, err)
	sender.host = server.URL

	err = sender.Send(context.Background(), &service.EmailMessage{ToEmail: "bob@example.com", Subject: "s"})
	assert.ErrorContains(t, err, "status=401")
}

func TestSendGridSender_Validation(t *testing.T) {
	_, err := NewSendGridSender("", "noreply@buyhive.test", "", discardLogger())
	assert.Error(t, err)

	_, err = NewSendGridSender("sg-key", "", "", discardLogger())
	assert.Error(t, err)

	sender, err := NewSendGridSender("sg-key", "noreply@buyhive.test", "", discardLogger())
	require.NoError(t, err)
	assert.Error(t, sender.Send(context.Background(), &service.EmailMessage{}))
}

func TestNewEmailSender(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.SendGridConfig
		want service.EmailSender
	}{
		{name: "not configured", cfg: nil, want: &dryRunSender{}},
		{name: "dry run", cfg: &config.SendGridConfig{APIKey: "k", FromEmail: "a@b.c", DryRun: true}, want: &dryRunSender{}},
		{name: "sendgrid", cfg: &config.SendGridConfig{APIKey: "k", FromEmail: "a@b.c"}, want: &SendGridSender{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewEmailSender(SenderParams{
				Config: &config.Config{SendGrid: tt.cfg},
				Logger: discardLogger(),
			})
			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}
