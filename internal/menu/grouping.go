package menu

// CategoryOrder is the curated display order for well-known categories.
// Categories not listed here still render, after the listed ones.
var CategoryOrder = []string{
	"Breakfast",
	"Appetizers",
	"Salads",
	"Soups",
	"Sandwiches",
	"Burgers",
	"Pastas",
	"Mains",
	"Sides",
	"Desserts",
	"Drinks",
	FallbackCategory,
}

// GroupedMenu maps effective categories to their items. It records the order
// categories were first seen in, since map iteration order is not stable and
// the board must not reshuffle between renders.
type GroupedMenu struct {
	groups map[string][]*MenuItem
	order  []string
}

// Group buckets items by effective category. Items keep the relative order
// they arrived in; no re-sorting happens inside a bucket.
func Group(items []*MenuItem) *GroupedMenu {
	g := &GroupedMenu{groups: make(map[string][]*MenuItem, len(items))}
	for _, item := range items {
		cat := item.EffectiveCategory()
		if _, seen := g.groups[cat]; !seen {
			g.order = append(g.order, cat)
		}
		g.groups[cat] = append(g.groups[cat], item)
	}
	return g
}

// Items returns the items bucketed under category, in arrival order.
func (g *GroupedMenu) Items(category string) []*MenuItem {
	return g.groups[category]
}

// Categories returns the categories present, in first-seen order.
func (g *GroupedMenu) Categories() []string {
	return g.order
}

// Len returns the number of non-empty categories.
func (g *GroupedMenu) Len() int {
	return len(g.order)
}

// SortCategories produces the display order: categories from the preference
// list first, in preference order, skipping those with no items; then every
// remaining category in first-seen order. Deterministic for a given grouping.
func SortCategories(g *GroupedMenu, preference []string) []string {
	sorted := make([]string, 0, g.Len())
	listed := make(map[string]bool, len(preference))
	for _, cat := range preference {
		listed[cat] = true
		if _, present := g.groups[cat]; present {
			sorted = append(sorted, cat)
		}
	}
	for _, cat := range g.order {
		if !listed[cat] {
			sorted = append(sorted, cat)
		}
	}
	return sorted
}

// FilterAvailable drops items explicitly marked unavailable. Items with no
// availability flag are kept. Applied on the public board only; the admin
// view must show hidden items so they can be toggled back.
func FilterAvailable(items []*MenuItem) []*MenuItem {
	filtered := make([]*MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable() {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// RepairActiveCategory keeps the active tab valid across regroups. If the
// active category vanished (all its items deleted or hidden), selection
// falls back to the first displayed category, or empty when nothing is left.
func RepairActiveCategory(active string, sorted []string) string {
	if len(sorted) == 0 {
		return ""
	}
	for _, cat := range sorted {
		if cat == active {
			return active
		}
	}
	return sorted[0]
}
