package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sbweb/lmsapi"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Session{}))
	return NewStore(db, ttl)
}

func testUser() lmsapi.User {
	return lmsapi.User{ID: 7, Email: "jo@example.com", Username: "jo", Role: "LEARNER", Enabled: true}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := testStore(t, time.Hour)

	sess, err := store.Create(testUser(), "access", "refresh")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "LEARNER", got.Role)

	user := got.User()
	assert.Equal(t, "jo", user.Username)
	assert.True(t, user.Enabled)
}

func TestStoreGetMissing(t *testing.T) {
	store := testStore(t, time.Hour)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreExpiredSessionIsMissing(t *testing.T) {
	store := testStore(t, -time.Minute)

	sess, err := store.Create(testUser(), "a", "r")
	require.NoError(t, err)

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateUser(t *testing.T) {
	store := testStore(t, time.Hour)

	sess, err := store.Create(testUser(), "a", "r")
	require.NoError(t, err)

	updated := testUser()
	updated.Username = "joanna"
	require.NoError(t, store.UpdateUser(sess.ID, updated))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "joanna", got.Username)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	store := testStore(t, time.Hour)

	sess, err := store.Create(testUser(), "a", "r")
	require.NoError(t, err)

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already-deleted session must not error.
	require.NoError(t, store.Delete(sess.ID))
	require.NoError(t, store.Delete("never-existed"))
}

func TestStoreDeleteExpired(t *testing.T) {
	store := testStore(t, time.Hour)

	live, err := store.Create(testUser(), "a", "r")
	require.NoError(t, err)

	// Force one row past expiry.
	dead, err := store.Create(testUser(), "a", "r")
	require.NoError(t, err)
	require.NoError(t, store.db.Model(&Session{}).Where("id = ?", dead.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	ids, err := store.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, []string{dead.ID}, ids)

	_, err = store.Get(live.ID)
	assert.NoError(t, err)

	// Nothing left to purge.
	ids, err = store.DeleteExpired()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
