package impl

import (
	"context"
	"testing"

	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/service"
	"buyhive/internal/errors"
	mockService "buyhive/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareDeliveryService_DeliverCartShared(t *testing.T) {
	ctx := context.Background()
	renderer := mockService.NewMockEmailRenderer(t)
	sender := mockService.NewMockEmailSender(t)
	srv := NewShareDeliveryService(renderer, sender, newDiscardLogger())

	event := &service.CartSharedEvent{EventID: "e1", RecipientEmail: "bob@example.com"}
	message := &service.EmailMessage{ToEmail: "bob@example.com", Subject: "Your Shared Cart: Groceries"}

	renderer.EXPECT().RenderCartShared(event).Return(message, nil)
	sender.EXPECT().Send(ctx, message).Return(nil)

	require.NoError(t, srv.DeliverCartShared(ctx, event))
}

func TestShareDeliveryService_DeliverCartShared_Failures(t *testing.T) {
	ctx := context.Background()
	sendErr := errors.New("sendgrid: 503")

	tests := []struct {
		name           string
		event          *service.CartSharedEvent
		setup          func(renderer *mockService.MockEmailRenderer, sender *mockService.MockEmailSender)
		wantValidation bool
	}{
		{
			name:           "missing recipient",
			event:          &service.CartSharedEvent{EventID: "e1"},
			setup:          func(*mockService.MockEmailRenderer, *mockService.MockEmailSender) {},
			wantValidation: true,
		},
		{
			name:  "render failure",
			event: &service.CartSharedEvent{EventID: "e1", RecipientEmail: "bob@example.com"},
			setup: func(renderer *mockService.MockEmailRenderer, _ *mockService.MockEmailSender) {
				renderer.EXPECT().RenderCartShared(mock.Anything).Return(nil, errors.New("snapshot has no cart"))
			},
			wantValidation: true,
		},
		{
			name:  "send failure",
			event: &service.CartSharedEvent{EventID: "e1", RecipientEmail: "bob@example.com"},
			setup: func(renderer *mockService.MockEmailRenderer, sender *mockService.MockEmailSender) {
				renderer.EXPECT().RenderCartShared(mock.Anything).Return(&service.EmailMessage{}, nil)
				sender.EXPECT().Send(ctx, &service.EmailMessage{}).Return(sendErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := mockService.NewMockEmailRenderer(t)
			sender := mockService.NewMockEmailSender(t)
			tt.setup(renderer, sender)

			err := NewShareDeliveryService(renderer, sender, newDiscardLogger()).DeliverCartShared(ctx, tt.event)
			require.Error(t, err)
			assert.Equal(t, tt.wantValidation, errors.Is(err, domainerrors.ErrValidationFailed))
			if !tt.wantValidation {
				assert.ErrorIs(t, err, sendErr)
			}
		})
	}
}
