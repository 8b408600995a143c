package models_test

import (
	"encoding/json"
	"testing"

	"carservice/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutFromDocument(t *testing.T) {
	checkout := models.CheckoutFromDocument(map[string]interface{}{
		"email":        "a@x.com",
		"service":      "oil-change",
		"status":       "pending",
		"customerName": "Jane Doe",
		"phone":        "555-0134",
	})

	assert.Equal(t, "a@x.com", checkout.Email)
	assert.Equal(t, "oil-change", checkout.ServiceID)
	assert.Equal(t, "pending", checkout.Status)
	assert.Equal(t, "Jane Doe", checkout.Extra["customerName"])
	assert.Equal(t, "555-0134", checkout.Extra["phone"])
	assert.NotContains(t, checkout.Extra, "email")
}

func TestCheckoutMarshalFlattensExtra(t *testing.T) {
	checkout := models.Checkout{
		ID:        "chk-1",
		Email:     "a@x.com",
		ServiceID: "oil-change",
		Status:    "pending",
		Extra:     models.JSONMap{"customerName": "Jane Doe"},
	}

	data, err := json.Marshal(checkout)
	assert.NoError(t, err)

	var doc map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "chk-1", doc["_id"])
	assert.Equal(t, "a@x.com", doc["email"])
	assert.Equal(t, "oil-change", doc["service"])
	assert.Equal(t, "pending", doc["status"])
	assert.Equal(t, "Jane Doe", doc["customerName"])
}

func TestJSONMapRoundTrip(t *testing.T) {
	original := models.JSONMap{"date": "2024-03-01", "price": 45.0}

	value, err := original.Value()
	assert.NoError(t, err)

	var loaded models.JSONMap
	assert.NoError(t, loaded.Scan(value))
	assert.Equal(t, "2024-03-01", loaded["date"])
	assert.Equal(t, 45.0, loaded["price"])
}

func TestJSONMapEmptyStoresNull(t *testing.T) {
	var empty models.JSONMap
	value, err := empty.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	var loaded models.JSONMap
	assert.NoError(t, loaded.Scan(nil))
	assert.Nil(t, loaded)
}
