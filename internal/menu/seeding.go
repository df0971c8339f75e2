package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menusnap/menusnap/internal/settings"
)

// Seeds returns all seeds for the menusnap service
func Seeds(db *mongo.Database) []seed.Seed {
	return []seed.Seed{
		{
			ID:          "2026-08-20_sample_menu_items",
			Description: "Seed a starter menu so a fresh deployment renders a board",
			Run: func(ctx context.Context) error {
				return seedSampleMenuItems(ctx, db)
			},
		},
		{
			ID:          "2026-08-20_default_theme",
			Description: "Seed the default restaurant theme settings",
			Run: func(ctx context.Context) error {
				return seedDefaultTheme(ctx, db)
			},
		},
	}
}

func seedSampleMenuItems(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("menu_items")
	now := time.Now()

	items := []struct {
		Name        string
		Description string
		Price       float64
		Category    string
	}{
		{"Caesar Salad", "Crisp romaine lettuce with parmesan, croutons, and house-made caesar dressing", 12.00, "Salads"},
		{"Bruschetta", "Toasted bread topped with fresh tomatoes, basil, and garlic", 10.00, "Appetizers"},
		{"Soup of the Day", "Chef's daily selection, served with artisan bread", 9.00, "Soups"},
		{"Chicken Wings", "Six crispy wings with your choice of buffalo, BBQ, or honey garlic", 14.00, "Appetizers"},
		{"Grilled Salmon", "Fresh Atlantic salmon with lemon butter, served with seasonal vegetables and rice", 28.00, "Mains"},
		{"Ribeye Steak", "12oz prime ribeye, cooked to perfection, with mashed potatoes and asparagus", 35.00, "Mains"},
		{"Pasta Carbonara", "Classic Italian pasta with pancetta, parmesan, and creamy egg sauce", 22.00, "Pastas"},
		{"Vegetarian Risotto", "Creamy arborio rice with seasonal vegetables, mushrooms, and parmesan", 20.00, "Mains"},
		{"Chicken Parmesan", "Breaded chicken breast with marinara sauce and mozzarella, served with pasta", 24.00, "Mains"},
		{"Fresh Lemonade", "House-made with fresh lemons and a hint of mint", 5.00, "Drinks"},
		{"Craft Beer Selection", "Ask your server for today's featured local brews", 7.00, "Drinks"},
		{"Espresso", "Rich, bold espresso made with premium beans", 4.00, "Drinks"},
		{"Iced Tea", "Refreshing house-brewed iced tea, sweetened or unsweetened", 4.00, "Drinks"},
	}

	for _, item := range items {
		doc := bson.M{
			"_id":            uuid.New().String(),
			"name":           item.Name,
			"description":    item.Description,
			"price":          item.Price,
			"category":       item.Category,
			"schema_version": CurrentMenuItemSchemaVersion,
			"created_at":     now,
			"created_by":     "seed",
			"updated_at":     now,
			"updated_by":     "seed",
		}

		filter := bson.M{"name": item.Name}
		update := bson.M{"$setOnInsert": doc}
		if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed menu item %s: %w", item.Name, err)
		}
	}

	return nil
}

func seedDefaultTheme(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("settings")
	def := settings.Default(settings.DefaultRestaurantID)
	now := time.Now()

	doc := bson.M{
		"_id":          def.ID,
		"name":         def.Name,
		"main_color":   def.MainColor,
		"accent_color": def.AccentColor,
		"created_at":   now,
		"updated_at":   now,
	}

	filter := bson.M{"_id": def.ID}
	update := bson.M{"$setOnInsert": doc}
	if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("seed default theme: %w", err)
	}

	return nil
}

// SeedingFunc returns a function for running seeds during service startup
func SeedingFunc(appName string, dbFn func() *mongo.Database, logger apt.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logger.Info("Applying menusnap database seeds...")
		db := dbFn()
		tracker := seed.NewMongoTracker(db)
		seeds := Seeds(db)
		if err := seed.Apply(ctx, tracker, seeds, appName); err != nil {
			return fmt.Errorf("apply seeds: %w", err)
		}
		logger.Info("Menusnap database seeds applied successfully")
		return nil
	}
}
