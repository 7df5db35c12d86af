package augment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"save-editor/core/session"
	"save-editor/feature/augment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, installed, queued []any) (*fiber.App, *session.Manager) {
	t.Helper()
	player, err := json.Marshal(map[string]any{
		"augmentations":       installed,
		"queuedAugmentations": queued,
	})
	require.NoError(t, err)
	wire, err := json.Marshal(map[string]any{
		"type": "BitburnerSaveObject",
		"data": map[string]string{"PlayerSave": string(player)},
	})
	require.NoError(t, err)

	sessions := session.NewManager(zap.NewNop())
	_, err = sessions.Open("save.json", wire)
	require.NoError(t, err)

	service := augment.NewService(sessions, zap.NewNop(), nil)
	handler := augment.NewHandler(service, zap.NewNop())

	// UnescapePath matches the server config; augmentation names carry
	// spaces that arrive percent-encoded.
	app := fiber.New(fiber.Config{UnescapePath: true})
	handler.RegisterRoutes(app)
	return app, sessions
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func TestHandleUpdateWithoutCascade(t *testing.T) {
	app, sessions := setupTestApp(t, nil, nil)

	req := jsonRequest(t, "PATCH", "/augmentations/BitWire", fiber.Map{"status": "installed"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var plan augment.Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Equal(t, "BitWire", plan.Target.Name)
	assert.Equal(t, augment.StatusInstalled, plan.Target.To)
	assert.Empty(t, plan.Cascade)

	sess, err := sessions.Current()
	require.NoError(t, err)
	assert.True(t, sess.HasChanges())
}

func TestHandleUpdateUnconfirmedCascade(t *testing.T) {
	app, sessions := setupTestApp(t, []any{
		record("Augmented Targeting I", 1),
		record("Augmented Targeting II", 1),
	}, nil)

	req := jsonRequest(t, "PATCH", "/augmentations/Augmented%20Targeting%20I", fiber.Map{"status": "none"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	var body struct {
		Error string       `json:"error"`
		Plan  augment.Plan `json:"plan"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Error)
	require.Len(t, body.Plan.Cascade, 1)
	assert.Equal(t, "Augmented Targeting II", body.Plan.Cascade[0].Name)

	// Nothing committed until the cascade is confirmed.
	sess, err := sessions.Current()
	require.NoError(t, err)
	assert.False(t, sess.HasChanges())
}

func TestHandleUpdateConfirmedCascade(t *testing.T) {
	app, sessions := setupTestApp(t, []any{
		record("Augmented Targeting I", 1),
		record("Augmented Targeting II", 1),
	}, nil)

	req := jsonRequest(t, "PATCH", "/augmentations/Augmented%20Targeting%20I",
		fiber.Map{"status": "none", "confirmed": true})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	sess, err := sessions.Current()
	require.NoError(t, err)
	assert.True(t, sess.HasChanges())
}

func TestHandleUpdateRejectsUnknownStatus(t *testing.T) {
	app, _ := setupTestApp(t, nil, nil)

	req := jsonRequest(t, "PATCH", "/augmentations/BitWire", fiber.Map{"status": "bought"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleNeuroFluxRoutesBeforeName(t *testing.T) {
	app, _ := setupTestApp(t, []any{record("NeuroFlux Governor", 3)}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/augmentations/neuroflux", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var levels augment.NeuroFlux
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&levels))
	assert.Equal(t, 3, levels.Installed)
	assert.Equal(t, 3, levels.Queued)

	req := jsonRequest(t, "PUT", "/augmentations/neuroflux", fiber.Map{"installed": 2, "queued": 4})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&levels))
	assert.Equal(t, 2, levels.Installed)
	assert.Equal(t, 4, levels.Queued)
}
