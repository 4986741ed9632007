// Package testutil provides per-test stores and fixture data.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"messageboard/internal/database"
	"messageboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// Fixture values shared by the message tests.
const (
	FixtureUsername     = "myuser"
	FixturePassword     = "mypassword"
	FixtureTitle        = "Test"
	FixtureBody         = "random words"
	AnotherFixtureTitle = "Another Test"
	AnotherUsername     = "anotheruser"
)

// Fixtures holds the records created by SeedFixtures.
type Fixtures struct {
	User    *models.User
	Message *models.Message
}

// NewSQLiteStore opens a private in-memory SQLite store for t and closes it
// when the test ends.
func NewSQLiteStore(t *testing.T) *database.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	store, err := database.OpenGORM(sqlite.Open(dsn))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close(context.Background()))
	})
	return store
}

// SeedFixtures creates the fixture user and a message written by them, and
// removes every fixture record once t finishes.
func SeedFixtures(t *testing.T, store *database.Store) Fixtures {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Username: FixtureUsername, Password: FixturePassword}
	require.NoError(t, store.Users.Create(ctx, user))

	message := &models.Message{
		Title:  FixtureTitle,
		Body:   FixtureBody,
		Author: user.ID,
	}
	require.NoError(t, store.Messages.Create(ctx, message))

	t.Cleanup(func() {
		_, err := store.Messages.DeleteByTitles(ctx, FixtureTitle, AnotherFixtureTitle)
		require.NoError(t, err)
		_, err = store.Users.DeleteByUsernames(ctx, FixtureUsername, AnotherUsername)
		require.NoError(t, err)
	})

	return Fixtures{User: user, Message: message}
}
