package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ckrskrrr/JellyDog/internal/domain"
	"github.com/ckrskrrr/JellyDog/internal/repository"
	"github.com/ckrskrrr/JellyDog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustInventory_Success(t *testing.T) {
	mock := &InventoryServiceMock{result: &service.AdjustResult{
		Success: true, NewStock: 30, PreviousStock: 25, Adjustment: 5,
	}}
	handler := NewAdminHandler(mock, &ProductAdminServiceMock{}, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/inventory/adjust",
		strings.NewReader(`{"store_id":1,"product_id":1,"adjustment":5}`))
	handler.AdjustInventory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body service.AdjustResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(30), body.NewStock)
	assert.Equal(t, int64(25), body.PreviousStock)
}

func TestAdjustInventory_ZeroAdjustmentIsValid(t *testing.T) {
	mock := &InventoryServiceMock{result: &service.AdjustResult{Success: true}}
	handler := NewAdminHandler(mock, &ProductAdminServiceMock{}, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/inventory/adjust",
		strings.NewReader(`{"store_id":1,"product_id":1,"adjustment":0}`))
	handler.AdjustInventory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, mock.calls)
}

func TestAdjustInventory_MissingField(t *testing.T) {
	mock := &InventoryServiceMock{}
	handler := NewAdminHandler(mock, &ProductAdminServiceMock{}, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/inventory/adjust",
		strings.NewReader(`{"store_id":1,"product_id":1}`))
	handler.AdjustInventory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, mock.calls)
}

func TestAdjustInventory_NegativeStockIsConflict(t *testing.T) {
	mock := &InventoryServiceMock{err: repository.ErrNegativeStock}
	handler := NewAdminHandler(mock, &ProductAdminServiceMock{}, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/inventory/adjust",
		strings.NewReader(`{"store_id":1,"product_id":1,"adjustment":-99}`))
	handler.AdjustInventory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "conflict", body.Code)
}

func TestAdjustInventory_UnknownRowIs404(t *testing.T) {
	mock := &InventoryServiceMock{err: repository.ErrInventoryNotFound}
	handler := NewAdminHandler(mock, &ProductAdminServiceMock{}, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/inventory/adjust",
		strings.NewReader(`{"store_id":9,"product_id":1,"adjustment":1}`))
	handler.AdjustInventory(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct_Created(t *testing.T) {
	mock := &ProductAdminServiceMock{product: &domain.Product{
		ID: 6, Name: "Jellyfish Plush", Category: "toys", Price: 19.99,
	}}
	handler := NewAdminHandler(&InventoryServiceMock{}, mock, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/products",
		strings.NewReader(`{"product_name":"Jellyfish Plush","category":"toys","price":19.99}`))
	handler.CreateProduct(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(6), body.ID)
}

func TestCreateProduct_MissingName(t *testing.T) {
	mock := &ProductAdminServiceMock{err: service.ErrMissingField}
	handler := NewAdminHandler(&InventoryServiceMock{}, mock, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/products",
		strings.NewReader(`{"category":"toys","price":19.99}`))
	handler.CreateProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct_PassesFieldsThrough(t *testing.T) {
	mock := &ProductAdminServiceMock{}
	handler := NewAdminHandler(&InventoryServiceMock{}, mock, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/admin/products/2",
		strings.NewReader(`{"price":9.99,"store_id":1,"stock":15}`))
	handler.UpdateProduct(rec, withPathParam(req, "id", "2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, mock.updateCalls)
	require.NotNil(t, mock.lastUpdate.Fields.Price)
	assert.InDelta(t, 9.99, *mock.lastUpdate.Fields.Price, 0.001)
	assert.Nil(t, mock.lastUpdate.Fields.Name)
	require.NotNil(t, mock.lastUpdate.Stock)
	assert.Equal(t, int64(15), *mock.lastUpdate.Stock)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	mock := &ProductAdminServiceMock{err: repository.ErrProductNotFound}
	handler := NewAdminHandler(&InventoryServiceMock{}, mock, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/admin/products/99",
		strings.NewReader(`{"price":9.99}`))
	handler.UpdateProduct(rec, withPathParam(req, "id", "99"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_Success(t *testing.T) {
	mock := &ProductAdminServiceMock{}
	handler := NewAdminHandler(&InventoryServiceMock{}, mock, testTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/admin/products/2", nil)
	handler.DeleteProduct(rec, withPathParam(req, "id", "2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, mock.deleteCalls)
}
