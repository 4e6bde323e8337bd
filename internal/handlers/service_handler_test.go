package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doctors-portal/api/internal/models"
)

func serviceRouter(env *testEnv) *gin.Engine {
	r := gin.New()
	r.GET("/services", env.handler.GetServices)
	r.GET("/available", env.handler.GetAvailable)
	return r
}

func TestGetServices(t *testing.T) {
	env := newTestEnv(t)
	r := serviceRouter(env)

	env.services.On("FindSummaries", mock.Anything).Return([]models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var svcs []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svcs))
	require.Len(t, svcs, 1)
	assert.Equal(t, "Cleaning", svcs[0].Name)
}

func TestGetAvailablePassesDateThrough(t *testing.T) {
	env := newTestEnv(t)
	r := serviceRouter(env)

	env.services.On("FindAll", mock.Anything).Return([]models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
	}, nil)
	env.bookings.On("FindByDate", mock.Anything, "2024-01-01").Return([]models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Slot: "10am"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/available?date=2024-01-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var svcs []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svcs))
	require.Len(t, svcs, 1)
	assert.Equal(t, []string{"9am", "11am"}, svcs[0].Slots)
}

func TestHome(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.GET("/", env.handler.Home)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": true}`, w.Body.String())
}
