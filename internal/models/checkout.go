package models

import (
	"encoding/json"
	"time"
)

// Checkout is a booking submitted through the checkout form. Email is the
// ownership key: a checkout is only listed for the caller whose token
// carries the same email. Beyond the fields below, clients may submit
// arbitrary order fields (customer name, date, phone, ...); those are kept
// in Extra and flattened back into the document on output.
type Checkout struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Email     string    `gorm:"index;type:varchar(255)" validate:"required,email"`
	ServiceID string    `gorm:"type:varchar(36)"`
	Status    string    `gorm:"type:varchar(50)"`
	Extra     JSONMap   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckoutFromDocument builds a Checkout from a decoded request body,
// splitting the well-known fields from whatever else the client sent.
func CheckoutFromDocument(doc map[string]interface{}) Checkout {
	var c Checkout
	extra := make(JSONMap)
	for key, value := range doc {
		switch key {
		case "_id":
			c.ID, _ = value.(string)
		case "email":
			c.Email, _ = value.(string)
		case "service":
			c.ServiceID, _ = value.(string)
		case "status":
			c.Status, _ = value.(string)
		default:
			extra[key] = value
		}
	}
	if len(extra) > 0 {
		c.Extra = extra
	}
	return c
}

// MarshalJSON renders the checkout as a flat document, merging Extra back
// in so responses carry exactly the fields the client submitted plus _id.
func (c Checkout) MarshalJSON() ([]byte, error) {
	doc := map[string]interface{}{
		"_id":    c.ID,
		"email":  c.Email,
		"status": c.Status,
	}
	if c.ServiceID != "" {
		doc["service"] = c.ServiceID
	}
	for key, value := range c.Extra {
		if _, taken := doc[key]; !taken {
			doc[key] = value
		}
	}
	return json.Marshal(doc)
}
