package pubsub

import (
	"encoding/json"

	"buyhive/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeCartShared is the event_type attribute of cart share messages
const EventTypeCartShared = "cart.shared"

// encodeCartShared returns the message body and the attributes subscribers
// filter and trace on. The recipient address stays in the body only.
func encodeCartShared(event *service.CartSharedEvent) ([]byte, map[string]string, error) {
	if event == nil || event.EventID == "" {
		return nil, nil, errors.New("cart shared event without id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": EventTypeCartShared,
		"cart_id":    cartIDOf(event),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

func cartIDOf(event *service.CartSharedEvent) string {
	if event.Snapshot.Cart == nil {
		return ""
	}

	return event.Snapshot.Cart.CartID
}
