package uniques

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, f *fixture) *fiber.App {
	app := fiber.New()
	feature := NewFeature(f.svc, context.Background())
	require.Equal(t, "uniques", feature.Name())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleCategories(t *testing.T) {
	app := setupTestApp(t, setupService(t, "exile"))

	resp, err := app.Test(httptest.NewRequest("GET", "/uniques/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cats []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	assert.Len(t, cats, 24)
	assert.Equal(t, "Flask", cats[0]["label"])
}

func TestHandleCheckAndItems(t *testing.T) {
	f := setupService(t, "exile")
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("POST", "/uniques/check?dry_run=true", strings.NewReader(tabula)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"applied":false`)

	resp, err = app.Test(httptest.NewRequest("GET", "/uniques/items", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))

	resp, err = app.Test(httptest.NewRequest("POST", "/uniques/check", strings.NewReader(tabula)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Found a keeper")

	resp, err = app.Test(httptest.NewRequest("GET", "/uniques/items/Tabula%20Rasa%20Simple%20Robe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/uniques/items/Mageblood%20Heavy%20Belt", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleCheck_Errors(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		body       string
		wantStatus int
	}{
		{"NotUnique", "exile", "Rarity: Magic\nSome\nThing\n", fiber.StatusUnprocessableEntity},
		{"NoUsername", "", tabula, fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t, setupService(t, tt.username))

			resp, err := app.Test(httptest.NewRequest("POST", "/uniques/check", strings.NewReader(tt.body)))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleSync(t *testing.T) {
	f := setupService(t, "exile")
	f.pipeline.block = make(chan struct{})
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("POST", "/uniques/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/uniques/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/uniques/status", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"busy":true`)

	close(f.pipeline.block)
	assert.Eventually(t, func() bool { return !f.svc.Status().Busy }, time.Second, 5*time.Millisecond)
}
