package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crescendo/internal/auth"
	"crescendo/internal/checkout"
	"crescendo/internal/models"
	"crescendo/internal/monitoring"
	"crescendo/internal/payment"
	"crescendo/internal/store"
)

func newTestServer(t *testing.T, successRate float64) (*Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	assert.NoError(t, st.AddMenuItem(models.MenuItem{
		ID: "M001", Name: "Margherita Pizza", Category: string(models.MenuCategoryMainCourse),
		Price: 12.50, PrepTime: 18 * time.Minute, Available: true,
	}))
	assert.NoError(t, st.AddMenuItem(models.MenuItem{
		ID: "M002", Name: "Caesar Salad", Category: string(models.MenuCategoryAppetizer),
		Price: 9.50, PrepTime: 8 * time.Minute, Available: true,
	}))
	assert.NoError(t, st.AddTable(models.Table{ID: "T001", Number: 1, Capacity: 2, Status: models.TableStatusAvailable}))
	assert.NoError(t, st.AddTable(models.Table{ID: "T002", Number: 2, Capacity: 4, Status: models.TableStatusDirty}))

	rng := rand.New(rand.NewSource(7))
	processor := payment.NewProcessor(rng, successRate, 0)
	server := NewServer(
		st,
		auth.NewService([]byte("test-key"), 0),
		checkout.NewService(st, processor, rng),
		monitoring.NewMonitor(),
		monitoring.NewCollectors(),
	)
	return server, st
}

func doJSON(server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, 1.0)
	w := doJSON(server, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	server, _ := newTestServer(t, 1.0)

	w := doJSON(server, "POST", "/api/v1/auth/login", gin.H{"username": "Muxlisa", "password": "Solieva123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "user")
	assert.Contains(t, response, "token")

	// wrong credentials are a recoverable inline error
	w = doJSON(server, "POST", "/api/v1/auth/login", gin.H{"username": "Muxlisa", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid username or password", response["error"])
}

func TestCreateOrder_Validation(t *testing.T) {
	server, st := newTestServer(t, 1.0)

	// missing customer name: no partial order is created
	w := doJSON(server, "POST", "/api/v1/orders", gin.H{
		"orderType": "dine-in",
		"items":     []gin.H{{"menuItemId": "M001", "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.Orders())

	// empty item list
	w = doJSON(server, "POST", "/api/v1/orders", gin.H{
		"customerName": "Ada",
		"orderType":    "takeaway",
		"items":        []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.Orders())
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	server, _ := newTestServer(t, 1.0)

	w := doJSON(server, "POST", "/api/v1/orders", gin.H{
		"customerName": "Ada",
		"orderType":    "dine-in",
		"tableId":      "T001",
		"items": []gin.H{
			{"menuItemId": "M001", "quantity": 2},
			{"menuItemId": "M002", "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 34.50, order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// the table picked up the order
	w = doJSON(server, "GET", "/api/v1/tables", nil)
	var tables []models.Table
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	assert.Equal(t, models.TableStatusOccupied, tables[0].Status)
	assert.Equal(t, order.ID, tables[0].CurrentOrderID)

	// skipping straight to served is rejected
	w = doJSON(server, "PUT", "/api/v1/orders/"+order.ID+"/status", gin.H{"status": "served"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(server, "PUT", "/api/v1/orders/"+order.ID+"/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "PUT", "/api/v1/orders/"+order.ID+"/status", gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)

	// once preparing, the ETA is bounded by the slowest item
	w = doJSON(server, "GET", "/api/v1/orders/"+order.ID+"/eta", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var eta map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &eta))
	assert.InDelta(t, 18, eta["remainingMinutes"], 1)

	// status filter preserves matches only
	w = doJSON(server, "GET", "/api/v1/orders?status=preparing", nil)
	var preparing []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &preparing))
	assert.Len(t, preparing, 1)
}

func TestTableAssignConflictOverHTTP(t *testing.T) {
	server, st := newTestServer(t, 1.0)
	_, err := st.AssignOrderToTable("T001", "O-existing")
	assert.NoError(t, err)

	w := doJSON(server, "POST", "/api/v1/tables/T001/assign", gin.H{"orderId": "O-new"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// dirty tables need a manual clean before seating
	w = doJSON(server, "POST", "/api/v1/tables/T002/assign", gin.H{"orderId": "O-new"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(server, "PUT", "/api/v1/tables/T002/status", gin.H{"status": "available"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(server, "POST", "/api/v1/tables/T002/assign", gin.H{"orderId": "O-new"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutOverHTTP(t *testing.T) {
	server, _ := newTestServer(t, 1.0)

	w := doJSON(server, "POST", "/api/v1/checkout", gin.H{
		"customerName":  "Ada",
		"orderType":     "delivery",
		"paymentMethod": "card",
		"items": []gin.H{
			{"menuItemId": "M001", "name": "Margherita Pizza", "price": 10.0, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var receipt checkout.Receipt
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.InDelta(t, 25.0, receipt.Total, 1e-9)
	assert.Len(t, receipt.OrderID, 4)
	assert.GreaterOrEqual(t, receipt.EstimatedMinutes, 18)
	assert.Less(t, receipt.EstimatedMinutes, 30)

	// a QR code is served for the new order
	w = doJSON(server, "GET", "/api/v1/orders/"+receipt.OrderID+"/qrcode", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestCheckout_DineInWithoutTableOverHTTP(t *testing.T) {
	server, st := newTestServer(t, 1.0)

	w := doJSON(server, "POST", "/api/v1/checkout", gin.H{
		"customerName":  "Ada",
		"orderType":     "dine-in",
		"paymentMethod": "card",
		"items": []gin.H{
			{"menuItemId": "M001", "name": "Margherita Pizza", "price": 10.0, "quantity": 2},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.Orders())
}

func TestCheckout_DeclinedOverHTTP(t *testing.T) {
	server, st := newTestServer(t, 0.0)

	w := doJSON(server, "POST", "/api/v1/checkout", gin.H{
		"customerName":  "Ada",
		"orderType":     "takeaway",
		"paymentMethod": "card",
		"items": []gin.H{
			{"menuItemId": "M001", "name": "Margherita Pizza", "price": 10.0, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Empty(t, st.Orders())
}

func TestInventoryEndpoints(t *testing.T) {
	server, st := newTestServer(t, 1.0)
	st.Seed()

	w := doJSON(server, "GET", "/api/v1/inventory/low-stock", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var low []models.InventoryItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &low))
	for _, item := range low {
		assert.LessOrEqual(t, item.Quantity, item.ReorderLevel)
	}

	w = doJSON(server, "POST", "/api/v1/inventory/I002/restock", gin.H{"amount": 20.0})
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.InventoryItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 28.0, item.Quantity)
}

func TestStats(t *testing.T) {
	server, _ := newTestServer(t, 1.0)

	doJSON(server, "POST", "/api/v1/checkout", gin.H{
		"customerName":  "Ada",
		"orderType":     "takeaway",
		"paymentMethod": "card",
		"items": []gin.H{
			{"menuItemId": "M001", "name": "Margherita Pizza", "price": 10.0, "quantity": 2},
		},
	})

	w := doJSON(server, "GET", "/api/v1/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats DashboardStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.ActiveOrders)
	assert.InDelta(t, 25.0, stats.TotalRevenue, 1e-9)
}

func TestMonitorMetrics(t *testing.T) {
	server, _ := newTestServer(t, 1.0)

	w := doJSON(server, "GET", "/api/v1/monitor/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "uptime_seconds")
}
