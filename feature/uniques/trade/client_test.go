package trade

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"unique-checker/feature/uniques/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(Config{
		BaseURL:        server.URL + "/",
		League:         "Standard",
		TimeoutSeconds: 5,
		UserAgent:      "unique-checker-test",
	})
}

func TestHTTPClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search/Standard", r.URL.Path)
		assert.Equal(t, "unique-checker-test", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		filters := gjson.GetBytes(body, "query.filters")
		assert.Equal(t, "exile", filters.Get("trade_filters.filters.account.input").String())
		assert.False(t, filters.Get("trade_filters.disabled").Bool())
		assert.Equal(t, "armour.chest", filters.Get("type_filters.filters.category.option").String())
		assert.Equal(t, "unique", filters.Get("type_filters.filters.rarity.option").String())

		_, _ = w.Write([]byte(`{"id":"q1","complexity":4,"result":["a1","b2","c3"],"total":3}`))
	})

	ids, err := client.Search(context.Background(), "exile", "armour.chest")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b2", "c3"}, ids)
}

func TestHTTPClient_SearchEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	})

	ids, err := client.Search(context.Background(), "exile", "map")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestHTTPClient_Fetch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fetch/a1,b2,c3", r.URL.Path)

		_, _ = w.Write([]byte(`{"result":[
			{"id":"a1","item":{"name":"Tabula Rasa","typeLine":"Simple Robe","frameType":3}},
			null,
			{"id":"c3","item":{"name":"Kaom's Heart","typeLine":"Glorious Plate","explicitMods":["+500 to maximum Life","Has no Sockets"]}}
		]}`))
	})

	items, err := client.Fetch(context.Background(), []string{"a1", "b2", "c3"})
	require.NoError(t, err)
	assert.Equal(t, []models.Item{
		{Name: "Tabula Rasa Simple Robe", ExplicitMods: []string{}},
		{Name: "Kaom's Heart Glorious Plate", ExplicitMods: []string{"+500 to maximum Life", "Has no Sockets"}},
	}, items)
}

func TestHTTPClient_FetchNoIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	items, err := client.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHTTPClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"RateLimited", http.StatusTooManyRequests, `{"error":{"code":3,"message":"Rate limit exceeded"}}`, ErrUnexpectedStatus},
		{"ServerError", http.StatusInternalServerError, ``, ErrUnexpectedStatus},
		{"NotJSON", http.StatusOK, `<html>maintenance</html>`, ErrMalformedBody},
		{"NoResult", http.StatusOK, `{"error":"nope"}`, ErrMalformedBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Search(context.Background(), "exile", "map")
			assert.ErrorIs(t, err, tt.want)

			_, err = client.Fetch(context.Background(), []string{"a1"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "exile", "map")
	assert.ErrorIs(t, err, context.Canceled)
}
