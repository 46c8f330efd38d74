package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type: %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"users": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestClient_SessionCookieCarried(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cret", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": 1, "role": "admin", "is_admin": true},
		})
	})
	mux.HandleFunc("/auth/admin/users", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"users": [{"id": 1, "email": "a@b.com"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0].Email)
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "backend message field",
			status:     http.StatusBadRequest,
			body:       `{"message": "price must be positive"}`,
			wantMsg:    "price must be positive",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "backend error field",
			status:     http.StatusConflict,
			body:       `{"error": "duplicate service_name"}`,
			wantMsg:    "duplicate service_name",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "non-JSON body falls back to generic message",
			status:     http.StatusBadGateway,
			body:       "<html>bad gateway</html>",
			wantMsg:    "request failed with status 502",
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.ListPlans(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode())
		})
	}
}

func TestClient_AuthRejectedHookFiresOncePerResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "unauthenticated"}`))
	}))
	defer server.Close()

	var fired int
	client := NewClient(server.URL)
	client.SetAuthRejectedHandler(func() { fired++ })

	_, err := client.ListForms(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthRejected(err))
	assert.Equal(t, 1, fired)

	_, err = client.ListForms(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, fired)
}

func TestClient_DeleteMissingSurfacesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "form not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteForm(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "form not found", err.Error())
}

func TestClient_Envelopes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/forms", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id": 1, "service_name": "basic_kundli",
			"display_name": "Basic Kundli Analysis", "is_active": true,
			"form_fields": [{"name": "full_name", "label": "Full Name", "type": "text", "required": true}]}]}`))
	})
	mux.HandleFunc("/admin/form-submissions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"submissions": [{"id": 7, "service_name": "basic_kundli",
			"status": "pending", "form_data": {"full_name": "A"}}]}}`))
	})
	mux.HandleFunc("/plans/admin/discounts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"discounts": [{"id": 3, "plan_id": 2, "plan_name": "Premium",
			"discount_percentage": 20, "is_active": true}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	forms, err := client.ListForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "basic_kundli", forms[0].ServiceName)
	require.Len(t, forms[0].FormFields, 1)
	assert.Equal(t, "full_name", forms[0].FormFields[0].Name)

	subs, err := client.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "pending", subs[0].Status)

	discounts, err := client.ListDiscounts(ctx)
	require.NoError(t, err)
	require.Len(t, discounts, 1)
	assert.Equal(t, float64(20), discounts[0].DiscountPercentage)
}

func TestSubmissionUpdateBodies(t *testing.T) {
	var gotStatus, gotNotes map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/form-submissions/9/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotStatus)
	})
	mux.HandleFunc("/admin/form-submissions/9/notes", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotNotes)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.SetSubmissionStatus(ctx, 9, StatusCompleted))
	assert.Equal(t, map[string]string{"status": "completed"}, gotStatus)

	require.NoError(t, client.SetSubmissionNotes(ctx, 9, "called the customer"))
	assert.Equal(t, map[string]string{"admin_notes": "called the customer"}, gotNotes)
}

func TestPlan_DiscountedPrice(t *testing.T) {
	plan := Plan{Price: 200, Discount: 25}
	assert.InDelta(t, 150, plan.DiscountedPrice(), 0.001)

	assert.InDelta(t, 200, Plan{Price: 200}.DiscountedPrice(), 0.001)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("pending"))
	assert.True(t, ValidStatus("cancelled"))
	assert.False(t, ValidStatus("archived"))
}
