package mongodb

import (
	"time"

	"buyhive/internal/domain/entity"
)

type userDocument struct {
	UserID    string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	CartCount int       `bson:"cart_count"`
	CartIDs   []string  `bson:"cart_ids"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type cartDocument struct {
	CartID    string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	CartName  string    `bson:"cart_name"`
	ItemCount int       `bson:"item_count"`
	CreatedAt time.Time `bson:"created_at"`
	ItemIDs   []string  `bson:"item_ids"`
}

type itemDocument struct {
	ItemID          string    `bson:"_id"`
	UserID          string    `bson:"user_id"`
	Name            string    `bson:"name"`
	Price           string    `bson:"price"`
	Image           *string   `bson:"image,omitempty"`
	URL             *string   `bson:"url,omitempty"`
	Notes           *string   `bson:"notes,omitempty"`
	AddedAt         time.Time `bson:"added_at"`
	SelectedCartIDs []string  `bson:"selected_cart_ids"`
}

type feedbackDocument struct {
	FeedbackID  string    `bson:"_id"`
	Type        string    `bson:"type"`
	Description string    `bson:"description"`
	FirstName   string    `bson:"first_name,omitempty"`
	LastName    string    `bson:"last_name,omitempty"`
	Email       string    `bson:"email,omitempty"`
	UserID      string    `bson:"user_id,omitempty"`
	Timestamp   time.Time `bson:"timestamp"`
	CreatedAt   time.Time `bson:"created_at"`
}

type extractionDocument struct {
	ExtractionID string    `bson:"_id"`
	URL          string    `bson:"url"`
	Domain       string    `bson:"domain"`
	UserID       string    `bson:"user_id"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		UserID:    doc.UserID,
		Email:     doc.Email,
		Name:      doc.Name,
		CartCount: doc.CartCount,
		CartIDs:   nonNil(doc.CartIDs),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromCartDomain(cart *entity.Cart) *cartDocument {
	return &cartDocument{
		CartID:    cart.CartID,
		UserID:    cart.UserID,
		CartName:  cart.CartName,
		ItemCount: len(cart.ItemIDs),
		CreatedAt: cart.CreatedAt,
		ItemIDs:   nonNil(cart.ItemIDs),
	}
}

func toCartDomain(doc *cartDocument) *entity.Cart {
	return &entity.Cart{
		CartID:    doc.CartID,
		UserID:    doc.UserID,
		CartName:  doc.CartName,
		ItemCount: doc.ItemCount,
		CreatedAt: doc.CreatedAt,
		ItemIDs:   nonNil(doc.ItemIDs),
	}
}

func fromItemDomain(item *entity.Item) *itemDocument {
	return &itemDocument{
		ItemID:          item.ItemID,
		UserID:          item.UserID,
		Name:            item.Name,
		Price:           item.Price,
		Image:           item.Image,
		URL:             item.URL,
		Notes:           item.Notes,
		AddedAt:         item.AddedAt,
		SelectedCartIDs: nonNil(item.SelectedCartIDs),
	}
}

func toItemDomain(doc *itemDocument) *entity.Item {
	return &entity.Item{
		ItemID:          doc.ItemID,
		UserID:          doc.UserID,
		Name:            doc.Name,
		Price:           doc.Price,
		Image:           doc.Image,
		URL:             doc.URL,
		Notes:           doc.Notes,
		AddedAt:         doc.AddedAt,
		SelectedCartIDs: nonNil(doc.SelectedCartIDs),
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
