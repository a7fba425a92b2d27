package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"clinic-inventory-service/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemEndpoints(t *testing.T) {
	r, _ := newTestRouter(seededState())

	w := doJSON(t, r, http.MethodPost, "/items", gin.H{
		"name": "Gloves", "department": "ER", "amount_needed": 50, "current_amount": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 6, created.ID)

	w = doJSON(t, r, http.MethodGet, "/items?department=ER", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	w = doJSON(t, r, http.MethodPut, "/items/6", gin.H{"current_amount": 35})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 35, updated.CurrentAmount)

	w = doJSON(t, r, http.MethodDelete, "/items/6", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/items/6", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUseItemEndpointDepletion(t *testing.T) {
	state := seededState()
	state.Items[0].CurrentAmount = 10
	state.Staff["nurse@x.com"] = models.User{Name: "Nina", Department: "ER"}
	r, _ := newTestRouter(state)

	w := doJSON(t, r, http.MethodPost, "/items/use", gin.H{
		"user_email": "nurse@x.com", "item_name": "Gauze", "amount": 10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.UseItemResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Depleted)
	assert.Equal(t, 0, result.Item.CurrentAmount)
	require.NotNil(t, result.Reservation)
	assert.Equal(t, models.StatusPending, result.Reservation.Status)
}

func TestUseItemEndpointUnknownStaff(t *testing.T) {
	r, _ := newTestRouter(seededState())

	w := doJSON(t, r, http.MethodPost, "/items/use", gin.H{
		"user_email": "ghost@x.com", "item_name": "Gauze", "amount": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrgEndpoints(t *testing.T) {
	state := seededState()
	state.Roles = []string{"Head"}
	state.Departments = []string{"Office"}
	state.Admins["admin@x.com"] = models.User{Name: "Ada"}
	r, _ := newTestRouter(state)

	w := doJSON(t, r, http.MethodPost, "/departments", gin.H{"name": "ER"})
	require.Equal(t, http.StatusCreated, w.Code)
	var departments []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &departments))
	assert.Equal(t, []string{"Office", "ER"}, departments)

	// duplicate add is a no-op
	w = doJSON(t, r, http.MethodPost, "/departments", gin.H{"name": "ER"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &departments))
	assert.Len(t, departments, 2)

	w = doJSON(t, r, http.MethodGet, "/roles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var admins map[string]models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admins))
	assert.Contains(t, admins, "admin@x.com")
}
