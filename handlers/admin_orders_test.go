package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hariyalifarms/hariyali-backend-go/database"
)

func doUpdateStatus(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, UpdateOrderStatus(c))
	return rec
}

func orderDoc(id primitive.ObjectID, status string, extra ...bson.E) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "status", Value: status},
		{Key: "customerName", Value: "Asha Patel"},
		{Key: "email", Value: "asha@example.com"},
	}
	return append(doc, extra...)
}

func matched(n int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: n},
		bson.E{Key: "nModified", Value: n},
	)
}

func TestUpdateOrderStatusWorkflow(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	orderID := primitive.NewObjectID()

	mt.Run("legal transition succeeds", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.orders", mtest.FirstBatch, orderDoc(orderID, "Pending")),
			matched(1),
		)

		rec := doUpdateStatus(mt.T, orderID.Hex(), `{"status":"Accepted"}`)

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), `"status":"Accepted"`)
	})

	mt.Run("illegal transition rejected", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.orders", mtest.FirstBatch, orderDoc(orderID, "Shipped")),
		)

		rec := doUpdateStatus(mt.T, orderID.Hex(), `{"status":"Rejected"}`)

		assert.Equal(mt.T, http.StatusConflict, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Illegal status transition")
	})

	mt.Run("concurrent transition detected", func(mt *mtest.T) {
		// Another admin moved the order between this handler's read and
		// its write: the status-filtered update matches nothing.
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.orders", mtest.FirstBatch, orderDoc(orderID, "Pending")),
			matched(0),
		)

		rec := doUpdateStatus(mt.T, orderID.Hex(), `{"status":"Accepted"}`)

		assert.Equal(mt.T, http.StatusConflict, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "concurrently")
	})

	mt.Run("tracking details attached on shipped", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.orders", mtest.FirstBatch, orderDoc(orderID, "Accepted")),
			matched(1),
		)

		rec := doUpdateStatus(mt.T, orderID.Hex(), `{"status":"Shipped","trackingId":"TRK9","shippingUrl":"https://courier.example.com/TRK9"}`)

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "TRK9")
	})

	mt.Run("empty tracking fields leave stored values alone", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.orders", mtest.FirstBatch,
				orderDoc(orderID, "Accepted", bson.E{Key: "trackingId", Value: "TRK-EXISTING"})),
			matched(1),
		)

		rec := doUpdateStatus(mt.T, orderID.Hex(), `{"status":"Shipped"}`)

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "TRK-EXISTING")
	})
}
