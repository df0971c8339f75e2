package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menusnap/menusnap/internal/settings"
)

// SettingsRepo implements the settings.Repo interface using MongoDB
type SettingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo creates a new MongoDB settings repository
func NewSettingsRepo(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{
		collection: db.Collection("settings"),
	}
}

// Get retrieves settings by restaurant id, returning nil when never saved
func (r *SettingsRepo) Get(ctx context.Context, id string) (*settings.Settings, error) {
	var s settings.Settings

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("could not get settings: %w", err)
	}
	return &s, nil
}

// Save upserts the settings document for its restaurant id
func (r *SettingsRepo) Save(ctx context.Context, s *settings.Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if s.ID == "" {
		s.ID = settings.DefaultRestaurantID
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, opts); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	return nil
}
