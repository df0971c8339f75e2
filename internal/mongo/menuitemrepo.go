package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menusnap/menusnap/internal/menu"
)

// MenuItemRepo implements the menu.MenuItemRepo interface using MongoDB
type MenuItemRepo struct {
	collection *mongo.Collection
}

// NewMenuItemRepo creates a new MongoDB menu item repository
func NewMenuItemRepo(db *mongo.Database) *MenuItemRepo {
	return &MenuItemRepo{
		collection: db.Collection("menu_items"),
	}
}

// EnsureIndexes creates the indexes used by list queries
func (r *MenuItemRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "available", Value: 1}}},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("cannot create menu_items indexes: %w", err)
	}
	return nil
}

// Create inserts a new menu item
func (r *MenuItemRepo) Create(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item cannot be nil")
	}

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("could not create menu item: %w", err)
	}
	return nil
}

// Get retrieves a menu item by ID, returning nil when it does not exist
func (r *MenuItemRepo) Get(ctx context.Context, id uuid.UUID) (*menu.MenuItem, error) {
	var item menu.MenuItem

	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("could not get menu item: %w", err)
	}
	return &item, nil
}

// List retrieves all menu items ordered by name. The board relies on this
// order: items inside a category keep it, and categories outside the curated
// list sort by first appearance in it.
func (r *MenuItemRepo) List(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.list(ctx, bson.M{})
}

// ListAvailable retrieves items not explicitly marked unavailable
func (r *MenuItemRepo) ListAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	return r.list(ctx, bson.M{"available": bson.M{"$ne": false}})
}

func (r *MenuItemRepo) list(ctx context.Context, filter bson.M) ([]*menu.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("could not list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*menu.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("could not decode menu items: %w", err)
	}

	return items, nil
}

// Save replaces an existing menu item
func (r *MenuItemRepo) Save(ctx context.Context, item *menu.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item cannot be nil")
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID.String()}, item)
	if err != nil {
		return fmt.Errorf("could not update menu item: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("menu item with ID %s not found", item.ID.String())
	}
	return nil
}

// Delete removes a menu item by ID
func (r *MenuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("could not delete menu item: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("menu item with ID %s not found", id.String())
	}
	return nil
}
