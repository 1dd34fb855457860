package email

import (
	"testing"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/service"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func sharedGroceries() *service.CartSharedEvent {
	return &service.CartSharedEvent{
		EventID:        "evt-1",
		RecipientEmail: "bob@example.com",
		SenderName:     "Ann",
		Message:        "For the weekend",
		Snapshot: entity.CartSnapshot{
			Cart: &entity.Cart{CartID: "c1", UserID: "u1", CartName: "Groceries", ItemCount: 2},
			Items: []*entity.Item{
				{
					ItemID: "i1",
					Name:   "Milk",
					Price:  "$3.99",
					URL:    strPtr("https://shop.test/milk"),
					Image:  strPtr("https://shop.test/milk.png"),
					Notes:  strPtr("Get the large one"),
				},
				{
					ItemID: "i2",
					Name:   "Bread &amp; Butter",
					Price:  "$5.00",
				},
			},
		},
	}
}

func TestRenderer_RenderCartShared_Golden(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	message, err := renderer.RenderCartShared(sharedGroceries())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", message.ToEmail)
	assert.Equal(t, "Your Shared Cart: Groceries", message.Subject)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "share_cart_html", []byte(message.HTMLBody))
	g.Assert(t, "share_cart_text", []byte(message.TextBody))
}

func TestRenderer_EscapesUserContent(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	event := sharedGroceries()
	event.Snapshot.Cart.CartName = "&lt;script&gt;alert(1)&lt;/script&gt;"
	event.Snapshot.Items[0].URL = strPtr("javascript:alert(1)")

	message, err := renderer.RenderCartShared(event)
	require.NoError(t, err)
	assert.NotContains(t, message.HTMLBody, "<script>")
	assert.NotContains(t, message.HTMLBody, "javascript:alert")
	assert.Contains(t, message.TextBody, `"<script>alert(1)</script>"`)
}

func TestRenderer_SenderFallback(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	event := sharedGroceries()
	event.SenderName = ""
	event.SenderEmail = "ann@example.com"

	message, err := renderer.RenderCartShared(event)
	require.NoError(t, err)
	assert.Contains(t, message.TextBody, "ann@example.com shared the cart")

	event.SenderEmail = ""
	message, err = renderer.RenderCartShared(event)
	require.NoError(t, err)
	assert.Contains(t, message.TextBody, defaultSenderName+" shared the cart")
}

func TestRenderer_EmptySnapshot(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	_, err = renderer.RenderCartShared(&service.CartSharedEvent{RecipientEmail: "bob@example.com"})
	assert.Error(t, err)
}
