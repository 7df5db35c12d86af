package savegame_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"save-editor/core/session"
	"save-editor/core/storage"
	"save-editor/feature/savegame"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const wireSave = `{"type":"BitburnerSaveObject","data":{` +
	`"PlayerSave":"{\"money\":1000}",` +
	`"FactionsSave":"",` +
	`"AllServersSave":""}}`

func setupTestApp(t *testing.T) (*fiber.App, *session.Manager) {
	t.Helper()
	sessions := session.NewManager(zap.NewNop())
	service := savegame.NewService(sessions, nil, storage.Config{}, zap.NewNop(), nil)
	handler := savegame.NewHandler(service, zap.NewNop())

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, sessions
}

func multipartUpload(t *testing.T, filename string, raw []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(raw)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestHandleLoadAndStatus(t *testing.T) {
	app, _ := setupTestApp(t)

	body, contentType := multipartUpload(t, "save.json", []byte(wireSave))
	req := httptest.NewRequest("POST", "/save/load", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status savegame.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "save.json", status.File)
	assert.Equal(t, "plain", status.Encoding)
	assert.False(t, status.HasChanges)
	assert.NotEmpty(t, status.SessionID)

	resp, err = app.Test(httptest.NewRequest("GET", "/save/status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleLoadRejectsGarbage(t *testing.T) {
	app, _ := setupTestApp(t)

	body, contentType := multipartUpload(t, "save.json", []byte("not a save at all"))
	req := httptest.NewRequest("POST", "/save/load", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleStatusWithoutSession(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/save/status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandleListWithoutStorage(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/save/list", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestHandleRevertAll(t *testing.T) {
	app, sessions := setupTestApp(t)
	_, err := sessions.Open("save.json", []byte(wireSave))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("POST", "/save/revert", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandleExport(t *testing.T) {
	app, sessions := setupTestApp(t)
	_, err := sessions.Open("save.json", []byte(wireSave))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/save/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "save-edited.json")
	assert.Empty(t, resp.Header.Get("X-Backup-Object"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BitburnerSaveObject")
}
