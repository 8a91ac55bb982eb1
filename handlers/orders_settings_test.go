package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/hariyalifarms/hariyali-backend-go/database"
)

const checkoutBody = `{"items":[{"productId":"abc","name":"Ghee","price":"₹499.00","quantity":1}],"address":{"firstName":"Asha","address":"1 Farm Rd","city":"Pune","zip":"411001"},"customerName":"Asha Patel","email":"asha@example.com","paymentMethod":"cod"}`

// A configured shipping charge or fee set must never be silently replaced by
// the free defaults just because the settings read failed: only a missing
// document may default, every other failure aborts before the order write.
func TestCheckoutSettingsReads(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("backend failure on shipping read aborts checkout", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		rec := doCheckout(mt.T, checkoutBody)

		assert.Equal(mt.T, http.StatusInternalServerError, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "shipping settings")
	})

	mt.Run("backend failure on fee read aborts checkout", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.settings", mtest.FirstBatch),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11600,
				Message: "interrupted at shutdown",
				Name:    "InterruptedAtShutdown",
			}),
		)

		rec := doCheckout(mt.T, checkoutBody)

		assert.Equal(mt.T, http.StatusInternalServerError, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "fee settings")
	})

	mt.Run("absent settings documents default to free shipping and no fees", func(mt *mtest.T) {
		database.DB = mt.DB
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hariyali.settings", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "hariyali.settings", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		rec := doCheckout(mt.T, checkoutBody)

		assert.Equal(mt.T, http.StatusCreated, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), `"shipping":0`)
		assert.Contains(mt.T, rec.Body.String(), `"total":499`)
	})
}
