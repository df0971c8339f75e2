package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const CurrentMenuItemSchemaVersion = 1

// FallbackCategory is the bucket for items whose category is empty after trimming.
const FallbackCategory = "Other"

// MenuItem represents a dish, drink or any offerable product on the board
type MenuItem struct {
	ID            uuid.UUID `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Price         Price     `json:"price" bson:"price"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category      string    `json:"category,omitempty" bson:"category,omitempty"`
	Available     *bool     `json:"available,omitempty" bson:"available,omitempty"` // nil means available
	MoreInfo      string    `json:"more_info,omitempty" bson:"more_info,omitempty"`
	SchemaVersion int       `json:"schema_version" bson:"schema_version"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	CreatedBy     string    `json:"created_by" bson:"created_by"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	UpdatedBy     string    `json:"updated_by" bson:"updated_by"`
}

// Price is a non-negative decimal amount. Payloads and stored documents may
// carry it as a number or as a numeric string; it is coerced once here at the
// boundary and never re-parsed at render time.
type Price float64

// UnmarshalJSON accepts both 9.5 and "9.5".
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

// Format renders the price with two decimal places.
func (p Price) Format() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// EffectiveCategory returns the category the item is grouped under: the
// stored category if it is non-empty after trimming, otherwise FallbackCategory.
func (m *MenuItem) EffectiveCategory() string {
	cat := strings.TrimSpace(m.Category)
	if cat == "" {
		return FallbackCategory
	}
	return cat
}

// IsAvailable reports whether the item shows on the public board.
// Only an explicit false hides it; absent means available.
func (m *MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}

// EnsureID generates a new UUID if ID is nil
func (m *MenuItem) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// GetID returns the menu item ID
func (m *MenuItem) GetID() uuid.UUID {
	return m.ID
}

// ResourceType returns the resource type for URL generation
func (m *MenuItem) ResourceType() string {
	return "menu/item"
}

// BeforeCreate sets up the menu item before creation
func (m *MenuItem) BeforeCreate() {
	m.EnsureID()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.SchemaVersion == 0 {
		m.SchemaVersion = CurrentMenuItemSchemaVersion
	}
}

// BeforeUpdate updates the timestamp
func (m *MenuItem) BeforeUpdate() {
	m.UpdatedAt = time.Now()
}

// MarshalBSON custom BSON marshaling for UUID handling
func (m *MenuItem) MarshalBSON() ([]byte, error) {
	doc := bson.M{
		"_id":            m.ID.String(),
		"name":           m.Name,
		"price":          float64(m.Price),
		"schema_version": m.SchemaVersion,
		"created_at":     m.CreatedAt,
		"created_by":     m.CreatedBy,
		"updated_at":     m.UpdatedAt,
		"updated_by":     m.UpdatedBy,
	}
	if m.Description != "" {
		doc["description"] = m.Description
	}
	if m.ImageURL != "" {
		doc["image_url"] = m.ImageURL
	}
	if m.Category != "" {
		doc["category"] = m.Category
	}
	if m.Available != nil {
		doc["available"] = *m.Available
	}
	if m.MoreInfo != "" {
		doc["more_info"] = m.MoreInfo
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON custom BSON unmarshaling for UUID handling. Price is coerced
// from double, int or string since legacy documents stored it as text.
func (m *MenuItem) UnmarshalBSON(data []byte) error {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	if idStr, ok := doc["_id"].(string); ok && idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("invalid UUID format for _id: %w", err)
		}
		m.ID = id
	}

	if v, ok := doc["name"].(string); ok {
		m.Name = v
	}
	if v, ok := doc["description"].(string); ok {
		m.Description = v
	}
	if v, ok := doc["image_url"].(string); ok {
		m.ImageURL = v
	}
	if v, ok := doc["category"].(string); ok {
		m.Category = v
	}
	if v, ok := doc["more_info"].(string); ok {
		m.MoreInfo = v
	}

	switch v := doc["price"].(type) {
	case float64:
		m.Price = Price(v)
	case int32:
		m.Price = Price(v)
	case int64:
		m.Price = Price(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid stored price %q: %w", v, err)
		}
		m.Price = Price(parsed)
	}

	if v, ok := doc["available"].(bool); ok {
		m.Available = &v
	}

	if v, ok := doc["schema_version"].(int32); ok {
		m.SchemaVersion = int(v)
	} else if v, ok := doc["schema_version"].(int64); ok {
		m.SchemaVersion = int(v)
	}

	if v, ok := doc["created_at"].(time.Time); ok {
		m.CreatedAt = v
	}
	if v, ok := doc["created_by"].(string); ok {
		m.CreatedBy = v
	}
	if v, ok := doc["updated_at"].(time.Time); ok {
		m.UpdatedAt = v
	}
	if v, ok := doc["updated_by"].(string); ok {
		m.UpdatedBy = v
	}

	return nil
}
