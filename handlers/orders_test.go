package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation happens before any database write, so these paths run without
// a connected store.

func doCheckout(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Checkout(c))
	return rec
}

func TestCheckoutValidation(t *testing.T) {
	t.Run("empty cart rejected before any write", func(t *testing.T) {
		rec := doCheckout(t, `{"items":[],"address":{"firstName":"A","address":"1 Farm Rd","city":"Pune","zip":"411001"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cart is empty")
	})

	t.Run("missing address rejected before any write", func(t *testing.T) {
		rec := doCheckout(t, `{"items":[{"productId":"abc","name":"Ghee","price":"₹499.00","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "address")
	})

	t.Run("malformed price rejected at bind", func(t *testing.T) {
		rec := doCheckout(t, `{"items":[{"productId":"abc","name":"Ghee","price":"n/a","quantity":1}],"address":{"address":"1 Farm Rd","city":"Pune","zip":"411001"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec := doCheckout(t, `{"items":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	e := echo.New()

	t.Run("invalid order id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Accepted"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("not-an-id")

		require.NoError(t, UpdateOrderStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Cancelled"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("507f1f77bcf86cd799439011")

		require.NoError(t, UpdateOrderStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown order status")
	})
}
