package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_ReturnsFailureStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	resp, err := client.Raw(context.Background(), http.MethodGet, "/plans", nil)
	require.NoError(t, err, "a non-2xx reply is a result, not an error")

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.False(t, resp.OK())
	assert.Contains(t, string(resp.Body), "boom")
}

func TestRaw_DoesNotFireAuthRejectedHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	fired := false
	client.SetAuthRejectedHandler(func() { fired = true })

	resp, err := client.Raw(context.Background(), http.MethodGet, "/auth/profile", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.False(t, fired, "the console reports the 401 instead of dropping the session")
}

func TestRaw_BodyPassthrough(t *testing.T) {
	var gotBody []byte
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "vvadmin/"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	body := []byte(`{"discount_percentage": 25, "end_date": "2026-12-31T23:59:59.000Z"}`)
	resp, err := client.Raw(context.Background(), http.MethodPost, "/plans/1/discount", body)
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, string(body), string(gotBody))
}

func TestRaw_RejectsBadInput(t *testing.T) {
	client := NewClient("http://backend.invalid")

	_, err := client.Raw(context.Background(), "BREW", "/plans", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported method")

	_, err = client.Raw(context.Background(), http.MethodPost, "/plans", []byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestRawResponse_PrettyBody(t *testing.T) {
	resp := &RawResponse{Body: []byte(`{"a":1}`)}
	assert.Equal(t, "{\n  \"a\": 1\n}", resp.PrettyBody())

	resp = &RawResponse{Body: []byte("plain text")}
	assert.Equal(t, "plain text", resp.PrettyBody())

	resp = &RawResponse{}
	assert.Empty(t, resp.PrettyBody())
}

func TestListUsersSensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/admin/users-sensitive", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"id": 1, "email": "a@b.com", "password_changed_at": "2026-01-01T00:00:00Z"},
			},
		})
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)
	users, err := client.ListUsersSensitive(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0]["email"])
	assert.Contains(t, users[0], "password_changed_at")
}
