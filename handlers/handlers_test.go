package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"attractionapi/db"
	"attractionapi/models"
	"attractionapi/repository"
	"attractionapi/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, models.Migrate(database))

	log := zerolog.Nop()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router,
		NewAttractionHandler(services.NewAttractionService(repository.NewAttractionRepository(database), log), log),
		NewLocationHandler(services.NewLocationService(repository.NewLocationRepository(database), log), log),
		NewHealthHandler(database, log),
	)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestAttractionCreate(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"created", `{"name":"Якуб Колас","description":"Основан в 1970","type":"PARK"}`, http.StatusCreated, ""},
		{"missing description", `{"name":"Якуб Колас"}`, http.StatusBadRequest, "Name and description cannot be null"},
		{"unknown type", `{"name":"a","description":"b","type":"ZOO"}`, http.StatusBadRequest, ""},
		{"malformed", `{"name":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/attractions", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusCreated {
				a := decode[models.Attraction](t, w)
				assert.NotZero(t, a.ID)
				assert.Equal(t, models.AttractionTypePark, *a.Type)
				return
			}
			if tt.error != "" {
				assert.Equal(t, tt.error, decode[Response](t, w).Error)
			}
		})
	}
}

func TestAttractionList(t *testing.T) {
	router := newTestRouter(t)
	for _, body := range []string{
		`{"name":"b","description":"1","type":"MUSEUM"}`,
		`{"name":"a","description":"2","type":"MUSEUM"}`,
		`{"name":"c","description":"3","type":"PARK"}`,
	} {
		require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/attractions", body).Code)
	}

	w := do(router, http.MethodGet, "/attractions?type=MUSEUM", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Attraction](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "a", *list[0].Name)
	assert.Equal(t, "b", *list[1].Name)

	w = do(router, http.MethodGet, "/attractions?type=MUSEUM&sortBy=id", "")
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[[]models.Attraction](t, w)
	assert.Equal(t, "b", *list[0].Name)

	w = do(router, http.MethodGet, "/attractions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Attraction](t, w))

	w = do(router, http.MethodGet, "/attractions?type=MUSEUM&sortBy=rating", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid sortBy parameter: rating", decode[Response](t, w).Error)

	w = do(router, http.MethodGet, "/attractions?type=museum", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttractionCreate_UnknownLocation(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodPost, "/attractions", `{"name":"n","description":"d","location":{"idLocation":999}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Location not found with id: 999", decode[Response](t, w).Error)
}

func TestAttractionListByLocation(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodPost, "/locations", `{"nameLocation":"Minsk","populationLocation":2000000,"hasMetro":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	location := decode[models.Location](t, w)

	body := `{"name":"Янка Купала","description":"d","location":{"idLocation":` + jsonNumber(location.ID) + `}}`
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/attractions", body).Code)

	w = do(router, http.MethodGet, "/attractions/Minsk", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Attraction](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Minsk", *list[0].Location.Name)
	assert.NotContains(t, w.Body.String(), "attractions")

	w = do(router, http.MethodGet, "/attractions/Unknown%20Location", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No attractions found for location: Unknown Location", decode[Response](t, w).Error)
}

func TestAttractionUpdateDescription(t *testing.T) {
	router := newTestRouter(t)
	created := decode[models.Attraction](t, do(router, http.MethodPost, "/attractions", `{"name":"n","description":"old"}`))
	path := "/attractions/" + jsonNumber(created.ID) + "/description"

	w := do(router, http.MethodPut, path, "Updated description")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated description", *decode[models.Attraction](t, w).Description)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, path, "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPut, "/attractions/999/description", "text").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, "/attractions/abc/description", "text").Code)
}

func TestAttractionDelete(t *testing.T) {
	router := newTestRouter(t)
	created := decode[models.Attraction](t, do(router, http.MethodPost, "/attractions",
		`{"name":"n","description":"d","services":[{"name":"Guide"}]}`))
	path := "/attractions/" + jsonNumber(created.ID)

	w := do(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, path, "").Code)
}

func TestLocationCreate(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/locations", `{"nameLocation":"Minsk","populationLocation":2000000,"hasMetro":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"idLocation":1,"nameLocation":"Minsk","populationLocation":2000000,"hasMetro":true}`, w.Body.String())

	w = do(router, http.MethodPost, "/locations", `{"nameLocation":"Nowhere","populationLocation":-1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Population cannot be negative.", decode[Response](t, w).Error)
}

func TestLocationUpdate(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		do(router, http.MethodPost, "/locations", `{"nameLocation":"Minsk","populationLocation":2000000,"hasMetro":true}`).Code)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"updated", "/locations/1/population/has_metro", `{"population":100000,"hasMetro":false}`, http.StatusOK},
		{"negative", "/locations/1/population/has_metro", `{"population":-1,"hasMetro":true}`, http.StatusBadRequest},
		{"missing flag", "/locations/1/population/has_metro", `{"population":5}`, http.StatusBadRequest},
		{"unknown id", "/locations/2/population/has_metro", `{"population":5,"hasMetro":true}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPut, tt.path, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	w := do(router, http.MethodPut, "/locations/1/population/has_metro", `{"population":0,"hasMetro":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"idLocation":1,"nameLocation":"Minsk","populationLocation":0,"hasMetro":false}`, w.Body.String())

	w = do(router, http.MethodPut, "/locations/2/population/has_metro", `{"population":5,"hasMetro":true}`)
	assert.Equal(t, "Location not found with id: 2", decode[Response](t, w).Error)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, w)["status"])
}

func jsonNumber(id uint64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
