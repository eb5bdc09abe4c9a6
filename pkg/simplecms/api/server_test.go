package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-cms/pkg/simplecms"
	"github.com/tendant/simple-cms/pkg/simplecms/api"
	"github.com/tendant/simple-cms/pkg/simplecms/repo/memory"
)

func setupTestServer(t *testing.T) *httptest.Server {
	svc, err := simplecms.New(simplecms.WithRepository(memory.New()))
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(svc))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPageEndpoints(t *testing.T) {
	server := setupTestServer(t)
	tenantID := uuid.New().String()

	t.Run("CreateAndFetch", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/pages", map[string]any{
			"tenant_id": tenantID,
			"slug":      "About-Us",
			"title":     "About Us",
			"content":   "<p>hello</p>",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created api.PageResponse
		decode(t, resp, &created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "About-Us", created.Slug)

		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/pages/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var fetched api.PageResponse
		decode(t, resp, &fetched)
		assert.Equal(t, created.ID, fetched.ID)

		// Slug lookup is case-insensitive
		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/pages/slug/about-us", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &fetched)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("DuplicateSlugConflict", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/pages", map[string]any{
			"slug":  "home",
			"title": "Home",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/pages", map[string]any{
			"slug":  "HOME",
			"title": "Home Again",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("UpdateMerge", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/pages", map[string]any{
			"slug":    "pricing",
			"title":   "Pricing",
			"content": "original",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created api.PageResponse
		decode(t, resp, &created)

		resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/pages/"+created.ID, map[string]any{
			"title": "New Pricing",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var updated api.PageResponse
		decode(t, resp, &updated)
		assert.Equal(t, "New Pricing", updated.Title)
		assert.Equal(t, "original", updated.Content)
		assert.Equal(t, "pricing", updated.Slug)
	})

	t.Run("NotFoundAndBadID", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/pages/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/pages/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestSeoEndpoints(t *testing.T) {
	server := setupTestServer(t)
	tenantID := uuid.New().String()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/seo", map[string]any{
		"tenant_id":        tenantID,
		"meta_title":       "Acme",
		"meta_description": "Acme widgets",
		"keywords":         []string{"acme"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.SeoConfigResponse
	decode(t, resp, &created)
	assert.True(t, created.IndexFollow)

	// Second config for the same tenant conflicts
	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/seo", map[string]any{
		"tenant_id":  tenantID,
		"meta_title": "Acme Again",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/seo/"+tenantID, map[string]any{
		"meta_title": "Acme Updated",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated api.SeoConfigResponse
	decode(t, resp, &updated)
	assert.Equal(t, "Acme Updated", updated.MetaTitle)
	assert.Equal(t, "Acme widgets", updated.MetaDescription)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/seo/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAnnouncementEndpoints(t *testing.T) {
	server := setupTestServer(t)
	tenantID := uuid.New().String()
	now := time.Now().UTC()

	t.Run("LifecycleViaReconcile", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/announcements", map[string]any{
			"tenant_id":  tenantID,
			"title":      "Live Now",
			"body":       "We are live.",
			"start_date": now.Add(-time.Hour).Format(time.RFC3339),
			"end_date":   now.Add(time.Hour).Format(time.RFC3339),
			"status":     "scheduled",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created api.AnnouncementResponse
		decode(t, resp, &created)
		assert.Equal(t, "scheduled", created.Status)

		resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/announcements/reconcile", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/announcements/"+created.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var swept api.AnnouncementResponse
		decode(t, resp, &swept)
		assert.Equal(t, "active", swept.Status)
	})

	t.Run("ListWithQueryFilters", func(t *testing.T) {
		otherTenant := uuid.New().String()
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/announcements", map[string]any{
			"tenant_id":  otherTenant,
			"title":      "Other",
			"body":       "other tenant",
			"start_date": now.Format(time.RFC3339),
			"end_date":   now.Add(time.Hour).Format(time.RFC3339),
			"status":     "expired",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodGet,
			server.URL+"/api/v1/announcements?tenant_id="+otherTenant+"&status=expired", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []api.AnnouncementResponse
		decode(t, resp, &list)
		require.Len(t, list, 1)
		assert.Equal(t, otherTenant, list[0].TenantID)

		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/announcements?status=nope", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("InvalidStatusRejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/announcements", map[string]any{
			"tenant_id":  tenantID,
			"title":      "Bad",
			"start_date": now.Format(time.RFC3339),
			"end_date":   now.Add(time.Hour).Format(time.RFC3339),
			"status":     "draft",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Delete", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/announcements", map[string]any{
			"tenant_id":  tenantID,
			"title":      "Temp",
			"start_date": now.Format(time.RFC3339),
			"end_date":   now.Add(time.Hour).Format(time.RFC3339),
			"status":     "active",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created api.AnnouncementResponse
		decode(t, resp, &created)

		resp = doJSON(t, http.MethodDelete, server.URL+"/api/v1/announcements/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/announcements/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
