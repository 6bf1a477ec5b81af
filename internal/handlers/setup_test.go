package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global connection at an in-memory SQLite database
// with the production schema.
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Settings{},
		&models.Employee{},
		&models.Task{},
		&models.ChatMessage{},
	)
	require.NoError(t, err, "failed to migrate tables")

	db.DB = gdb
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/test", TestRoute)

		api.POST("/register", RegisterUser)
		api.POST("/signup", RegisterUser)
		api.POST("/login", LoginUser)

		api.GET("/settings/:user_id", GetSettings)
		api.PUT("/settings/:user_id", UpdateSettings)

		api.GET("/employees", ListEmployees)
		api.POST("/employees", CreateEmployee)
		api.GET("/employees/:id", GetEmployee)

		api.GET("/tasks", ListTasks)
		api.POST("/tasks", CreateTask)
		api.GET("/tasks/:id", GetTask)
		api.PUT("/tasks/:id", UpdateTask)
		api.DELETE("/tasks/:id", DeleteTask)

		api.GET("/chats/:user_id/:other_id", ListMessages)
		api.POST("/chats", PostMessage)
	}

	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}
