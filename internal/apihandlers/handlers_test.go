package apihandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outfitter/internal/app"
	"outfitter/internal/config"
	"outfitter/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.Recommender.Seed = 3
	cfg.Recommender.MaxCount = 4

	a, err := app.NewApp(cfg)
	require.NoError(t, err)

	router := gin.New()
	NewAPIHandler(a).RegisterRoutes(router)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthHandler(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListEventsHandler(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/api/v1/events")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["Sports","Formal","Casual"]}`, rec.Body.String())
}

func TestWardrobeHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/api/v1/events/sports/wardrobe")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Wardrobe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sports", resp.Data.Event)
	assert.Equal(t, []string{"Tank Top", "Jersey"}, resp.Data.Tops)
	assert.Equal(t, []string{"Soccer Shorts", "Tennis Skirt"}, resp.Data.Bottoms)
}

func TestWardrobeHandler_UnknownEvent(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/api/v1/events/gala/wardrobe")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestSuggestOutfitHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := doGet(t, router, "/api/v1/events/Formal/outfit?count=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Suggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	for _, s := range resp.Data {
		assert.Equal(t, "Formal", s.Event)
		assert.Contains(t, []string{"Vest", "Blouse"}, s.Top)
		assert.Contains(t, []string{"Long Pants", "Pencil Skirt"}, s.Bottom)
	}
}

func TestSuggestOutfitHandler_DefaultCount(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/api/v1/events/casual/outfit")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Suggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}

func TestSuggestOutfitHandler_Errors(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown event", "/api/v1/events/beach/outfit", http.StatusNotFound, "not_found"},
		{"non-numeric count", "/api/v1/events/sports/outfit?count=many", http.StatusBadRequest, "bad_request"},
		{"zero count", "/api/v1/events/sports/outfit?count=0", http.StatusBadRequest, "bad_request"},
		{"count above max", "/api/v1/events/sports/outfit?count=5", http.StatusBadRequest, "bad_request"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doGet(t, router, tc.path)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
		})
	}
}
