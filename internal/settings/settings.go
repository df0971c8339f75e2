package settings

import (
	"strings"
	"time"
)

// DefaultRestaurantID scopes settings lookups when no tenant id is configured.
const DefaultRestaurantID = "default"

// Settings holds the restaurant display name and theme applied to the board
// as CSS variables. All fields are free-form strings; the only rule is that
// an update field must be non-empty after trimming to take effect.
type Settings struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	MainColor    string    `json:"main_color,omitempty" bson:"main_color,omitempty"`
	AccentColor  string    `json:"accent_color,omitempty" bson:"accent_color,omitempty"`
	FontFamily   string    `json:"font_family,omitempty" bson:"font_family,omitempty"`
	FontColor    string    `json:"font_color,omitempty" bson:"font_color,omitempty"`
	HeroImageURL string    `json:"hero_image_url,omitempty" bson:"hero_image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ColorOption is a curated palette entry offered by the admin theme picker.
type ColorOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MainColorOptions are the curated background palette choices.
var MainColorOptions = []ColorOption{
	{Value: "#2c2a26", Label: "Charcoal"},
	{Value: "#1a1816", Label: "Dark Brown"},
	{Value: "#0f0f0f", Label: "Black"},
	{Value: "#3d3d3d", Label: "Slate"},
	{Value: "#4a3728", Label: "Espresso"},
}

// AccentColorOptions are the curated accent palette choices.
var AccentColorOptions = []ColorOption{
	{Value: "#8b6914", Label: "Gold"},
	{Value: "#c9a227", Label: "Amber"},
	{Value: "#b8860b", Label: "Dark Goldenrod"},
	{Value: "#cd7f32", Label: "Bronze"},
	{Value: "#722f37", Label: "Burgundy"},
}

// Default returns the settings used before an admin ever saved a theme.
func Default(id string) *Settings {
	if id == "" {
		id = DefaultRestaurantID
	}
	now := time.Now()
	return &Settings{
		ID:          id,
		Name:        "Restaurant Menu",
		MainColor:   MainColorOptions[0].Value,
		AccentColor: AccentColorOptions[0].Value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdates copies incoming fields onto s. A field only takes effect when
// it is non-empty after trimming; everything else keeps its stored value.
func (s *Settings) ApplyUpdates(in *Settings) {
	if v := strings.TrimSpace(in.Name); v != "" {
		s.Name = v
	}
	if v := strings.TrimSpace(in.MainColor); v != "" {
		s.MainColor = v
	}
	if v := strings.TrimSpace(in.AccentColor); v != "" {
		s.AccentColor = v
	}
	if v := strings.TrimSpace(in.FontFamily); v != "" {
		s.FontFamily = v
	}
	if v := strings.TrimSpace(in.FontColor); v != "" {
		s.FontColor = v
	}
	if v := strings.TrimSpace(in.HeroImageURL); v != "" {
		s.HeroImageURL = v
	}
	s.UpdatedAt = time.Now()
}
