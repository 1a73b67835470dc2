package backup

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"unique-checker/core/session"
	"unique-checker/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, client *mocks.Client, identity Identity) *fiber.App {
	return setupTestAppWith(t, client, &fakeRestorer{}, identity)
}

func setupTestAppWith(t *testing.T, client *mocks.Client, restorer Restorer, identity Identity) *fiber.App {
	feature := NewFeature(client, storageCfg, &fakeEntries{}, restorer, identity, zap.NewNop())
	require.True(t, feature.IsEnabled())
	feature.Service().now = func() time.Time { return fixedNow }

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleExport(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snapshots-test").Return(true, nil)
	client.On("PutObject", mock.Anything, "snapshots-test", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	app := setupTestApp(t, client, staticIdentity("exile"))
	resp, err := app.Test(httptest.NewRequest("POST", "/backup", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "snapshots/exile/20260301T123000Z.json")
}

func TestHandleExport_NoIdentity(t *testing.T) {
	app := setupTestApp(t, new(mocks.Client), staticIdentity(""))

	resp, err := app.Test(httptest.NewRequest("POST", "/backup", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snapshots-test").Return(true, nil)
	client.On("ListObjects", mock.Anything, "snapshots-test", mock.Anything).
		Return(objectChan(minio.ObjectInfo{Key: "snapshots/exile/20260301T000000Z.json", Size: 42}))

	app := setupTestApp(t, client, staticIdentity("exile"))
	resp, err := app.Test(httptest.NewRequest("GET", "/backup", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"size":42`)
}

func TestHandleRestore(t *testing.T) {
	key := "snapshots/exile/20260301T000000Z.json"
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "snapshots-test", key, mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"username":"exile","entries":[{"username":"exile","item":{"name":"Foo","explicitMods":[]},"explicitModValues":[]}]}`)), nil)

	app := setupTestApp(t, client, staticIdentity("exile"))

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"Valid", `{"object":"` + key + `"}`, fiber.StatusOK},
		{"Missing", `{}`, fiber.StatusBadRequest},
		{"Foreign", `{"object":"snapshots/someone/x.json"}`, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/backup/restore", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandleRestore_Busy(t *testing.T) {
	key := "snapshots/exile/20260301T000000Z.json"
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "snapshots-test", key, mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"username":"exile","entries":[]}`)), nil)

	app := setupTestAppWith(t, client, &fakeRestorer{err: session.ErrBusy}, staticIdentity("exile"))

	req := httptest.NewRequest("POST", "/backup/restore", strings.NewReader(`{"object":"`+key+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
