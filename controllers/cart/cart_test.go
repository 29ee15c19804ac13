package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chinmaye5/Freelance-ecommerce/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	carts := r.Group("/carts")
	carts.POST("", CreateCart(db))
	carts.GET("/:token", GetCart(db))
	carts.POST("/:token/items", AddCartItem(db))
	carts.DELETE("/:token/items/:product_id", DeleteCartItem(db))
	carts.DELETE("/:token", ClearCart(db))
	return r
}

func newCart(t *testing.T, r *gin.Engine) string {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/carts", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.NotEmpty(t, cart.Token)
	return cart.Token
}

func addItem(r *gin.Engine, token string, productID uint, quantity int) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	})
	req := httptest.NewRequest(http.MethodPost, "/carts/"+token+"/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func floatPtr(f float64) *float64 { return &f }

func TestAddCartItem_AppendsWithPriceSnapshot(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{
		Name: "Olive Oil", Price: 100, DiscountedPrice: floatPtr(75), Stock: 5, Unit: "litre",
	}).Error)
	token := newCart(t, r)

	w := addItem(r, token, 1, 2)
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 75.0, item.Price, "snapshot uses the effective price")
	assert.Equal(t, "litre", item.Unit)
}

func TestAddCartItem_MergesQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 30, Stock: 10}).Error)
	token := newCart(t, r)

	require.Equal(t, http.StatusCreated, addItem(r, token, 1, 2).Code)
	w := addItem(r, token, 1, 3)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 5, item.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count, "merge must not create a second row")
}

func TestAddCartItem_StockExceededReportsCeiling(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Eggs", Price: 60, Stock: 4}).Error)
	token := newCart(t, r)

	require.Equal(t, http.StatusCreated, addItem(r, token, 1, 3).Code)

	w := addItem(r, token, 1, 2)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Stock)

	// The persisted cart is unchanged.
	var item models.CartItem
	require.NoError(t, db.First(&item, "product_id = ?", 1).Error)
	assert.Equal(t, 3, item.Quantity)
}

func TestAddCartItem_FirstInsertionChecksStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Saffron", Price: 500, Stock: 2}).Error)
	token := newCart(t, r)

	w := addItem(r, token, 1, 5)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddCartItem_SequentialAddsStabilizeAtStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Apples", Price: 40, Stock: 3}).Error)
	token := newCart(t, r)

	for i := 0; i < 3; i++ {
		w := addItem(r, token, 1, 1)
		require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, "add %d", i+1)
	}

	w := addItem(r, token, 1, 1)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Stock)

	var item models.CartItem
	require.NoError(t, db.First(&item, "product_id = ?", 1).Error)
	assert.Equal(t, 3, item.Quantity)
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	token := newCart(t, r)

	w := addItem(r, token, 42, 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItem_UnknownCartToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 30, Stock: 10}).Error)

	w := addItem(r, "no-such-cart", 1, 1)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCart_ReturnsItems(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 30, Stock: 10}).Error)
	token := newCart(t, r)
	require.Equal(t, http.StatusCreated, addItem(r, token, 1, 2).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/carts/"+token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestDeleteCartItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 30, Stock: 10}).Error)
	token := newCart(t, r)
	require.Equal(t, http.StatusCreated, addItem(r, token, 1, 2).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/carts/%s/items/1", token), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)

	// Deleting it again is a 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/carts/%s/items/1", token), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 30, Stock: 10}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Bread", Price: 25, Stock: 10}).Error)
	token := newCart(t, r)
	require.Equal(t, http.StatusCreated, addItem(r, token, 1, 1).Code)
	require.Equal(t, http.StatusCreated, addItem(r, token, 2, 1).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/carts/"+token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}
