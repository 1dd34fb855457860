//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"buyhive/internal/domain/entity"
	"buyhive/internal/domain/repository"
	"buyhive/internal/infra/persistence/model"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const postgresPort = "5432"

// newTestDB starts a throwaway PostgreSQL container and returns a migrated connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{postgresPort + "/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "buyhive",
				"POSTGRES_PASSWORD": "buyhive",
				"POSTGRES_DB":       "buyhive_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(postgresPort+"/tcp"),
			),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)

	db, err := pgLib.New(&pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     port.Port(),
			UserName: "buyhive",
			Password: "buyhive",
		},
		Database: "buyhive_test",
	})
	require.NoError(t, err)
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, db.WithContext(ctx).AutoMigrate(model.All()...))

	return db
}

func TestPostgresDirectories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	carts := NewCartRepository(db)
	items := NewItemRepository(db)

	userID := "auth0|" + uuid.NewString()
	_, err := users.Upsert(ctx, &entity.UserProfile{UserID: userID, Email: "a@example.com", Name: "A"})
	require.NoError(t, err)

	t.Run("upsert keeps references of an existing user", func(t *testing.T) {
		require.NoError(t, users.AddCartRef(ctx, userID, "c-upsert"))

		user, err := users.Upsert(ctx, &entity.UserProfile{UserID: userID, Email: "b@example.com", Name: "B"})
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", user.Email)
		assert.Equal(t, "B", user.Name)
		assert.Equal(t, []string{"c-upsert"}, user.CartIDs)
		assert.Equal(t, 1, user.CartCount)

		require.NoError(t, users.RemoveCartRef(ctx, userID, "c-upsert"))
	})

	t.Run("cart references are idempotent", func(t *testing.T) {
		require.NoError(t, users.AddCartRef(ctx, userID, "c1"))
		require.NoError(t, users.AddCartRef(ctx, userID, "c1"))

		user, err := users.FindByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, user.CartIDs)
		assert.Equal(t, 1, user.CartCount)

		require.NoError(t, users.RemoveCartRef(ctx, userID, "c1"))
		require.NoError(t, users.RemoveCartRef(ctx, userID, "c1"))

		user, err = users.FindByID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, user.CartIDs)
		assert.Equal(t, 0, user.CartCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, users.AddCartRef(ctx, "nobody", "c1"), repository.ErrUserNotFound)
		assert.ErrorIs(t, users.RemoveCartRef(ctx, "nobody", "c1"), repository.ErrUserNotFound)
		assert.ErrorIs(t, users.SetCartRefs(ctx, "nobody", []string{"c1"}), repository.ErrUserNotFound)
	})

	t.Run("item references never double count", func(t *testing.T) {
		cart := &entity.Cart{CartID: uuid.NewString(), UserID: userID, CartName: "Groceries", CreatedAt: time.Now().UTC(), ItemIDs: []string{}}
		require.NoError(t, carts.Create(ctx, cart))

		added, err := carts.AddItemRef(ctx, userID, cart.CartID, "i1")
		require.NoError(t, err)
		assert.True(t, added)
		added, err = carts.AddItemRef(ctx, userID, cart.CartID, "i1")
		require.NoError(t, err)
		assert.False(t, added)

		got, err := carts.FindByID(ctx, userID, cart.CartID)
		require.NoError(t, err)
		assert.Equal(t, []string{"i1"}, got.ItemIDs)
		assert.Equal(t, 1, got.ItemCount)

		removed, err := carts.RemoveItemRef(ctx, userID, cart.CartID, "i1")
		require.NoError(t, err)
		assert.True(t, removed)
		removed, err = carts.RemoveItemRef(ctx, userID, cart.CartID, "i1")
		require.NoError(t, err)
		assert.False(t, removed)

		got, err = carts.FindByID(ctx, userID, cart.CartID)
		require.NoError(t, err)
		assert.Empty(t, got.ItemIDs)
		assert.Equal(t, 0, got.ItemCount)

		_, err = carts.FindByID(ctx, "someone-else", cart.CartID)
		assert.ErrorIs(t, err, repository.ErrCartNotFound)
		added, err = carts.AddItemRef(ctx, "someone-else", cart.CartID, "i2")
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("rename and delete are scoped to the owner", func(t *testing.T) {
		cart := &entity.Cart{CartID: uuid.NewString(), UserID: userID, CartName: "Old", CreatedAt: time.Now().UTC(), ItemIDs: []string{}}
		require.NoError(t, carts.Create(ctx, cart))

		assert.ErrorIs(t, carts.Rename(ctx, "someone-else", cart.CartID, "New"), repository.ErrCartNotFound)
		require.NoError(t, carts.Rename(ctx, userID, cart.CartID, "New"))

		got, err := carts.FindByID(ctx, userID, cart.CartID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.CartName)

		assert.ErrorIs(t, carts.Delete(ctx, "someone-else", cart.CartID), repository.ErrCartNotFound)
		require.NoError(t, carts.Delete(ctx, userID, cart.CartID))
		assert.ErrorIs(t, carts.Delete(ctx, userID, cart.CartID), repository.ErrCartNotFound)
	})

	t.Run("url is unique per user", func(t *testing.T) {
		url := "https://shop.example/" + uuid.NewString()
		first := &entity.Item{ItemID: uuid.NewString(), UserID: userID, Name: "Milk", Price: "$3", URL: &url, AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1"}}
		second := &entity.Item{ItemID: uuid.NewString(), UserID: userID, Name: "Milk", Price: "$3", URL: &url, AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1"}}
		other := &entity.Item{ItemID: uuid.NewString(), UserID: "other-user", Name: "Milk", Price: "$3", URL: &url, AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c9"}}

		require.NoError(t, items.Create(ctx, first))
		assert.ErrorIs(t, items.Create(ctx, second), repository.ErrDuplicateItemURL)
		assert.NoError(t, items.Create(ctx, other))

		found, err := items.FindByURL(ctx, userID, url)
		require.NoError(t, err)
		assert.Equal(t, first.ItemID, found.ItemID)
	})

	t.Run("items without a url never collide", func(t *testing.T) {
		for range 2 {
			item := &entity.Item{ItemID: uuid.NewString(), UserID: userID, Name: "Eggs", Price: "$4", AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1"}}
			require.NoError(t, items.Create(ctx, item))
		}
	})

	t.Run("updates return the new row", func(t *testing.T) {
		item := &entity.Item{ItemID: uuid.NewString(), UserID: userID, Name: "Cheese", Price: "$6", AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1"}}
		require.NoError(t, items.Create(ctx, item))

		note := "aged"
		updated, err := items.UpdateNote(ctx, userID, item.ItemID, &note)
		require.NoError(t, err)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "aged", *updated.Notes)
		assert.Equal(t, "Cheese", updated.Name)
		assert.Equal(t, []string{"c1"}, updated.SelectedCartIDs)

		updated, err = items.SetCartRefs(ctx, userID, item.ItemID, []string{"c2", "c3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c2", "c3"}, updated.SelectedCartIDs)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "aged", *updated.Notes)

		_, err = items.UpdateNote(ctx, "someone-else", item.ItemID, &note)
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
		_, err = items.SetCartRefs(ctx, userID, "missing", []string{"c1"})
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
	})

	t.Run("orphan delete is conditional", func(t *testing.T) {
		item := &entity.Item{ItemID: uuid.NewString(), UserID: userID, Name: "Bread", Price: "$2", AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1", "c2"}}
		require.NoError(t, items.Create(ctx, item))

		updated, err := items.RemoveCartRef(ctx, userID, item.ItemID, "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c2"}, updated.SelectedCartIDs)

		deleted, err := items.DeleteIfOrphan(ctx, userID, item.ItemID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = items.RemoveCartRef(ctx, userID, item.ItemID, "c2")
		require.NoError(t, err)

		deleted, err = items.DeleteIfOrphan(ctx, "someone-else", item.ItemID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = items.DeleteIfOrphan(ctx, userID, item.ItemID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = items.FindByID(ctx, userID, item.ItemID)
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
	})

	t.Run("batched reads keep caller order", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
		for _, id := range ids {
			require.NoError(t, items.Create(ctx, &entity.Item{ItemID: id, UserID: userID, Name: id, Price: "$1", AddedAt: time.Now().UTC(), SelectedCartIDs: []string{"c1"}}))
		}

		got, err := items.FindByIDs(ctx, userID, []string{ids[2], "missing", ids[0], ids[1]})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, ids[2], got[0].ItemID)
		assert.Equal(t, ids[0], got[1].ItemID)
		assert.Equal(t, ids[1], got[2].ItemID)
	})

	t.Run("feedback and failed extractions are recorded", func(t *testing.T) {
		now := time.Now().UTC()
		feedback := &entity.Feedback{FeedbackID: uuid.NewString(), Type: "bug", Description: "broken", UserID: userID, Timestamp: now, CreatedAt: now}
		require.NoError(t, NewFeedbackRepository(db).Create(ctx, feedback))

		extraction := &entity.FailedExtraction{ExtractionID: uuid.NewString(), URL: "https://shop.example/p/1", Domain: "shop.example", UserID: userID, CreatedAt: now}
		require.NoError(t, NewExtractionRepository(db).RecordFailure(ctx, extraction))

		var feedbackCount, extractionCount int64
		require.NoError(t, db.Model(&model.FeedbackModel{}).Where("feedback_id = ?", feedback.FeedbackID).Count(&feedbackCount).Error)
		require.NoError(t, db.Model(&model.FailedExtractionModel{}).Where("extraction_id = ?", extraction.ExtractionID).Count(&extractionCount).Error)
		assert.Equal(t, int64(1), feedbackCount)
		assert.Equal(t, int64(1), extractionCount)
	})

	t.Run("user ids are listed in order", func(t *testing.T) {
		_, err := users.Upsert(ctx, &entity.UserProfile{UserID: "aaa|first", Email: "f@example.com", Name: "F"})
		require.NoError(t, err)

		ids, err := users.ListIDs(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, ids)
		assert.Equal(t, "aaa|first", ids[0])
		assert.Contains(t, ids, userID)
	})
}
