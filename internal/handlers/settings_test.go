package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
)

func createSettings(t *testing.T, userID uint) models.Settings {
	t.Helper()

	settings := models.Settings{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		Language:      "en",
	}
	require.NoError(t, db.DB.Create(&settings).Error)

	return settings
}

func TestGetSettings(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()
		createSettings(t, 7)

		w := performRequest(t, r, http.MethodGet, "/api/settings/7", nil)

		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.EqualValues(t, 7, body["userId"])
		assert.Equal(t, "light", body["theme"])
		assert.Equal(t, true, body["notifications"])
		assert.Equal(t, "en", body["language"])
	})

	t.Run("unknown user", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()

		w := performRequest(t, r, http.MethodGet, "/api/settings/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Settings not found", decodeBody(t, w)["error"])
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()

		w := performRequest(t, r, http.MethodGet, "/api/settings/abc", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("merges provided fields only", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()
		before := createSettings(t, 7)

		time.Sleep(10 * time.Millisecond)

		w := performRequest(t, r, http.MethodPut, "/api/settings/7", gin.H{"theme": "dark"})

		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "dark", body["theme"])
		assert.Equal(t, true, body["notifications"])
		assert.Equal(t, "en", body["language"])

		var stored models.Settings
		require.NoError(t, db.DB.Where("user_id = ?", 7).First(&stored).Error)
		assert.True(t, stored.UpdatedAt.After(before.UpdatedAt), "updatedAt must be stamped")
	})

	t.Run("updates several fields at once", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()
		createSettings(t, 7)

		w := performRequest(t, r, http.MethodPut, "/api/settings/7", gin.H{
			"notifications": false,
			"language":      "fr",
		})

		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["notifications"])
		assert.Equal(t, "fr", body["language"])
		assert.Equal(t, "light", body["theme"])
	})

	t.Run("never creates a row", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()

		w := performRequest(t, r, http.MethodPut, "/api/settings/42", gin.H{"theme": "dark"})

		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		db.DB.Model(&models.Settings{}).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("rejects unknown theme values", func(t *testing.T) {
		setupTestDB(t)
		r := newTestRouter()
		createSettings(t, 7)

		w := performRequest(t, r, http.MethodPut, "/api/settings/7", gin.H{"theme": "neon"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterThenGetSettings(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := performRequest(t, r, http.MethodPost, "/api/register", gin.H{
		"email":    "alice@example.com",
		"password": "secret-password",
		"name":     "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)["user"].(map[string]interface{})
	userID := uint(user["id"].(float64))

	got := performRequest(t, r, http.MethodGet, fmt.Sprintf("/api/settings/%d", userID), nil)
	require.Equal(t, http.StatusOK, got.Code)

	body := decodeBody(t, got)
	assert.Equal(t, "light", body["theme"])
	assert.Equal(t, true, body["notifications"])
	assert.Equal(t, "en", body["language"])
}
