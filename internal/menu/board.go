package menu

import (
	"github.com/menusnap/menusnap/internal/i18n"
	"github.com/menusnap/menusnap/internal/settings"
)

// BoardCategory is one tab on the board: the raw category key, its localized
// label, and the items in arrival order.
type BoardCategory struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Items []*MenuItem `json:"items"`
}

// Board is the fully derived public menu view. It is recomputed from a fresh
// fetch on every request and holds no state of its own.
type Board struct {
	Title          string             `json:"title"`
	Locale         string             `json:"locale"`
	Lang           string             `json:"lang"`
	Dir            string             `json:"dir"`
	ActiveCategory string             `json:"active_category"`
	Categories     []BoardCategory    `json:"categories"`
	Theme          *settings.Settings `json:"theme,omitempty"`
	EmptyMessage   string             `json:"empty_message,omitempty"`
}

// BoardOptions control how the derived view is assembled.
type BoardOptions struct {
	Locale i18n.Locale
	Active string // previously selected category, repaired if gone
	All    bool   // admin variant: keep unavailable items, raw labels
	Theme  *settings.Settings
}

// BuildBoard runs the grouping engine over the fetched items and assembles
// the display payload: availability filter (public only), grouping, category
// ordering, active-tab repair, localized labels.
func BuildBoard(items []*MenuItem, opts BoardOptions) *Board {
	if !opts.All {
		items = FilterAvailable(items)
	}

	grouped := Group(items)
	sorted := SortCategories(grouped, CategoryOrder)

	board := &Board{
		Title:          i18n.T("hero.title", opts.Locale),
		Locale:         string(opts.Locale),
		Lang:           i18n.LangTag(opts.Locale),
		Dir:            i18n.Direction(opts.Locale),
		ActiveCategory: RepairActiveCategory(opts.Active, sorted),
		Categories:     make([]BoardCategory, 0, len(sorted)),
		Theme:          opts.Theme,
	}

	for _, cat := range sorted {
		label := cat
		if !opts.All {
			label = i18n.CategoryLabel(cat, opts.Locale)
		}
		board.Categories = append(board.Categories, BoardCategory{
			Key:   cat,
			Label: label,
			Items: grouped.Items(cat),
		})
	}

	if len(board.Categories) == 0 {
		board.EmptyMessage = i18n.T("ui.noMenuItems", opts.Locale)
	}

	return board
}
