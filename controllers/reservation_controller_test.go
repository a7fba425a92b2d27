package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-inventory-service/controllers"
	"clinic-inventory-service/models"
	"clinic-inventory-service/repository"
	"clinic-inventory-service/routes"
	"clinic-inventory-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(state *models.State) (*gin.Engine, *repository.MemoryStateRepository) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	repo := repository.NewMemoryStateRepository(state)
	notifier := services.NewNotifier(nil, log)

	reservationService := services.NewReservationService(repo, notifier, log)
	itemService := services.NewItemService(repo, notifier, reservationService, log)
	orgService := services.NewOrgService(repo, log)

	r := gin.New()
	routes.RegisterRoutes(r,
		controllers.NewReservationController(reservationService),
		controllers.NewItemController(itemService),
		controllers.NewOrgController(orgService),
	)
	return r, repo
}

func seededState() *models.State {
	state := models.NewState()
	state.Items = []models.Item{
		{ID: 5, Name: "Gauze", Department: "ER", AmountNeeded: 100, CurrentAmount: 0},
	}
	return state
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReservationEndpoint(t *testing.T) {
	r, _ := newTestRouter(seededState())

	w := doJSON(t, r, http.MethodPost, "/reservations", gin.H{
		"item_id": 5, "user_email": "nurse@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var res models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.ID)
	assert.Equal(t, "Gauze", res.ItemName)
	assert.Equal(t, 100, res.AmountToRefill)
	assert.Equal(t, models.StatusPending, res.Status)
	assert.Equal(t, services.FormatDate(services.Today()), res.ExpectedRestockDate)
}

func TestCreateReservationEndpointValidation(t *testing.T) {
	r, _ := newTestRouter(seededState())

	// missing user_email
	w := doJSON(t, r, http.MethodPost, "/reservations", gin.H{"item_id": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown item
	w = doJSON(t, r, http.MethodPost, "/reservations", gin.H{
		"item_id": 404, "user_email": "nurse@x.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReservationEndpoint(t *testing.T) {
	state := seededState()
	state.Reservations = []models.Reservation{{ID: 1, ItemID: 5, Status: models.StatusPending}}
	r, _ := newTestRouter(state)

	w := doJSON(t, r, http.MethodGet, "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/reservations/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/reservations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReservationsEndpointFilters(t *testing.T) {
	state := seededState()
	state.Reservations = []models.Reservation{
		{ID: 1, Department: "ER", Status: models.StatusPending},
		{ID: 2, Department: "Office", Status: models.StatusPending},
		{ID: 3, Department: "ER", Status: models.StatusFulfilled},
	}
	r, _ := newTestRouter(state)

	w := doJSON(t, r, http.MethodGet, "/reservations?status=pending&department=ER", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ID)
}

func TestFulfillReservationEndpoint(t *testing.T) {
	state := seededState()
	state.Items[0].CurrentAmount = 30
	state.Reservations = []models.Reservation{{ID: 1, ItemID: 5, Status: models.StatusPending}}
	r, repo := newTestRouter(state)

	w := doJSON(t, r, http.MethodPost, "/reservations/1/fulfill", nil)
	require.Equal(t, http.StatusOK, w.Code)

	persisted, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, persisted.Items[0].CurrentAmount)

	// fulfilling again conflicts
	w = doJSON(t, r, http.MethodPost, "/reservations/1/fulfill", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/reservations/7/fulfill", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReservationEndpoint(t *testing.T) {
	state := seededState()
	state.Reservations = []models.Reservation{{ID: 1, ItemID: 5, Status: models.StatusPending}}
	r, _ := newTestRouter(state)

	w := doJSON(t, r, http.MethodDelete, "/reservations/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/reservations/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
