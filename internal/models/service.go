package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Facility describes one amenity included with a service.
type Facility struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// FacilityList is stored as a JSON text column.
type FacilityList []Facility

// Value implements driver.Valuer.
func (l FacilityList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *FacilityList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into FacilityList", src)
	}
}

// Service is a catalog entry. The catalog is seeded out-of-band and
// read-only through the API, so there are no create/update routes for it.
type Service struct {
	ID          string       `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string       `json:"title" validate:"required"`
	Price       float64      `json:"price" validate:"gte=0"`
	Img         string       `json:"img,omitempty"`
	Description string       `json:"description,omitempty"`
	Facility    FacilityList `json:"facility,omitempty" gorm:"type:text"`
}
