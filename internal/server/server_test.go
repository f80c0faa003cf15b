package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"notekeeper-be/internal/bootstrap"
	"notekeeper-be/internal/config"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/server"
	"notekeeper-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.NewSqliteDB("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Folder{}, &model.Note{}))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "*",
		},
	}

	container := bootstrap.NewContainer(db, cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	return body.Error.Message
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFolderNoteLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Create folder
	resp := doJSON(t, app, http.MethodPost, "/folders", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/folders/1", resp.Header.Get(fiber.HeaderLocation))

	var folder struct {
		Id   uint   `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, resp, &folder)
	assert.Equal(t, uint(1), folder.Id)
	assert.Equal(t, "Work", folder.Name)

	// Create note
	resp = doJSON(t, app, http.MethodPost, "/notes", `{"folder_id":1,"name":"Todo","content":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/notes/1", resp.Header.Get(fiber.HeaderLocation))

	var note struct {
		Id           uint   `json:"id"`
		FolderId     uint   `json:"folder_id"`
		Name         string `json:"name"`
		Content      string `json:"content"`
		TimeModified int64  `json:"time_modified"`
	}
	decodeBody(t, resp, &note)
	assert.Equal(t, uint(1), note.Id)
	assert.Equal(t, uint(1), note.FolderId)
	assert.Equal(t, "Todo", note.Name)
	assert.Equal(t, "Buy milk", note.Content)
	assert.Positive(t, note.TimeModified)

	// List notes
	resp = doJSON(t, app, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []json.RawMessage
	decodeBody(t, resp, &notes)
	assert.Len(t, notes, 1)

	// Delete folder cascades
	resp = doJSON(t, app, http.MethodDelete, "/folders/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notes = nil
	decodeBody(t, resp, &notes)
	assert.Empty(t, notes)

	resp = doJSON(t, app, http.MethodGet, "/notes/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Note doesn't exist", errorMessage(t, resp))
}

func TestCreateValidation(t *testing.T) {
	app := newTestApp(t)

	t.Run("folder missing name", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/folders", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing 'name' in request body", errorMessage(t, resp))
	})

	t.Run("note missing content", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/notes", `{"folder_id":1,"name":"Todo"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing 'content' in request body", errorMessage(t, resp))
	})

	t.Run("note referencing unknown folder", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/notes", `{"folder_id":999,"name":"Todo","content":"x"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Referenced folder doesn't exist", errorMessage(t, resp))
	})
}

func TestPartialUpdate(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/folders", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/notes", `{"folder_id":1,"name":"Todo","content":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("empty body against existing id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/folders/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Request body must content either 'name'", errorMessage(t, resp))
	})

	t.Run("empty body against unknown id is a 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/folders/999", `{}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Folder doesn't exist", errorMessage(t, resp))
	})

	t.Run("only unrecognized fields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/notes/1", `{"color":"red"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Request body must content either 'folder_id', 'name' or 'content'", errorMessage(t, resp))
	})

	t.Run("unrecognized fields ignored alongside a recognized one", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/notes/1", `{"color":"red","name":"Chores"}`)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/notes/1", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var note struct {
			Name    string `json:"name"`
			Content string `json:"content"`
		}
		decodeBody(t, resp, &note)
		assert.Equal(t, "Chores", note.Name)
		assert.Equal(t, "Buy milk", note.Content)
	})
}

func TestMalformedIdIsNotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/folders/abc", "/folders/0", "/notes/-1"} {
		resp := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
		resp.Body.Close()
	}
}

func TestSanitizationOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/folders", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/notes",
		`{"folder_id":1,"name":"Todo","content":"<script>alert('xss')</script>Hello"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var note struct {
		Content string `json:"content"`
	}
	decodeBody(t, resp, &note)
	assert.Equal(t, "Hello", note.Content)

	resp = doJSON(t, app, http.MethodGet, "/notes/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &note)
	assert.Equal(t, "Hello", note.Content)
}
