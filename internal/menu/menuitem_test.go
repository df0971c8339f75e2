package menu

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestPriceCoercion(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{
			name:    "stringPrice",
			payload: `{"name":"Soup","price":"9"}`,
			want:    "9.00",
		},
		{
			name:    "numericPrice",
			payload: `{"name":"Cake","price":9.5}`,
			want:    "9.50",
		},
		{
			name:    "paddedStringPrice",
			payload: `{"name":"Tea","price":" 4.25 "}`,
			want:    "4.25",
		},
		{
			name:    "emptyStringPrice",
			payload: `{"name":"Water","price":""}`,
			want:    "0.00",
		},
		{
			name:    "nullPrice",
			payload: `{"name":"Water","price":null}`,
			want:    "0.00",
		},
		{
			name:    "garbagePrice",
			payload: `{"name":"Bad","price":"nine"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item MenuItem
			err := json.Unmarshal([]byte(tt.payload), &item)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := item.Price.Format(); got != tt.want {
				t.Errorf("Price.Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEffectiveCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "set", category: "Soups", want: "Soups"},
		{name: "empty", category: "", want: FallbackCategory},
		{name: "whitespace", category: "  \t ", want: FallbackCategory},
		{name: "trimmed", category: "  Desserts ", want: "Desserts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MenuItem{Category: tt.category}
			if got := m.EffectiveCategory(); got != tt.want {
				t.Errorf("EffectiveCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	yes := true
	no := false
	tests := []struct {
		name      string
		available *bool
		want      bool
	}{
		{name: "absent", available: nil, want: true},
		{name: "explicitTrue", available: &yes, want: true},
		{name: "explicitFalse", available: &no, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MenuItem{Available: tt.available}
			if got := m.IsAvailable(); got != tt.want {
				t.Errorf("IsAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBeforeCreate(t *testing.T) {
	m := &MenuItem{Name: "Soup"}
	m.BeforeCreate()

	if m.ID == uuid.Nil {
		t.Error("BeforeCreate() did not assign an ID")
	}
	if m.SchemaVersion != CurrentMenuItemSchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", m.SchemaVersion, CurrentMenuItemSchemaVersion)
	}
	if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
		t.Error("BeforeCreate() did not set timestamps")
	}
}

func TestBSONRoundTrip(t *testing.T) {
	no := false
	src := &MenuItem{
		Name:        "Grilled Salmon",
		Description: "Fresh Atlantic salmon",
		Price:       28,
		ImageURL:    "https://example.com/salmon.jpg",
		Category:    "Mains",
		Available:   &no,
	}
	src.BeforeCreate()

	data, err := src.MarshalBSON()
	if err != nil {
		t.Fatalf("MarshalBSON() error = %v", err)
	}

	var out MenuItem
	if err := out.UnmarshalBSON(data); err != nil {
		t.Fatalf("UnmarshalBSON() error = %v", err)
	}

	if out.ID != src.ID {
		t.Errorf("ID = %s, want %s", out.ID, src.ID)
	}
	if out.Name != src.Name || out.Description != src.Description || out.Category != src.Category {
		t.Errorf("round trip lost fields: %+v", out)
	}
	if out.Price != src.Price {
		t.Errorf("Price = %v, want %v", out.Price, src.Price)
	}
	if out.Available == nil || *out.Available {
		t.Error("Available flag lost in round trip")
	}
}
