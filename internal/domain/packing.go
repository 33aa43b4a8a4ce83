package domain

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// PackingCategory classifies a packing-list item. Unlike expense categories,
// packing categories are open-ended: the standard set below always renders
// in the checklist, and any other value found in the data is appended as a
// custom category.
type PackingCategory string

const (
	PackingClothing    PackingCategory = "clothing"
	PackingElectronics PackingCategory = "electronics"
	PackingGear        PackingCategory = "gear"
	PackingMedical     PackingCategory = "medical"
	PackingDocuments   PackingCategory = "documents"
	PackingToiletries  PackingCategory = "toiletries"
	PackingFood        PackingCategory = "food"
	PackingOther       PackingCategory = "other"
)

// PackingCategories lists the standard categories in checklist order.
var PackingCategories = []PackingCategory{
	PackingClothing,
	PackingElectronics,
	PackingGear,
	PackingMedical,
	PackingDocuments,
	PackingToiletries,
	PackingFood,
	PackingOther,
}

// Standard reports whether c is one of the fixed checklist categories.
func (c PackingCategory) Standard() bool {
	for _, known := range PackingCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display form of the category (first letter capitalized).
func (c PackingCategory) Label() string {
	s := string(c)
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Quantity bounds for packing items. Out-of-range values are clamped on
// create and rejected or clamped on update (below the floor is a rejected
// no-op, above the ceiling clamps).
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// PackingItem is one entry on the shared packing checklist. Creator is who
// added the item; Packer is who most recently marked it packed. The two
// roles are distinct and never conflated. Packer is only meaningful while
// IsPacked is true — unpacking does not clear it, display logic hides it.
type PackingItem struct {
	ID        uuid.UUID       `json:"id"`
	TripID    uuid.UUID       `json:"trip_id"`
	Name      string          `json:"name"`
	Notes     string          `json:"notes,omitempty"`
	Quantity  int             `json:"quantity"`
	Category  PackingCategory `json:"category"`
	IsPacked  bool            `json:"is_packed"`
	Creator   UserRef         `json:"creator,omitzero"`
	Packer    UserRef         `json:"packer,omitzero"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PackingProgress computes packed/unpacked progress over the checklist.
func PackingProgress(items []PackingItem) Progress {
	packed := 0
	for _, item := range items {
		if item.IsPacked {
			packed++
		}
	}
	return progressOf(packed, len(items))
}

// PackingGroup is one category section of the checklist.
type PackingGroup struct {
	Category PackingCategory `json:"category"`
	Label    string          `json:"label"`
	Items    []PackingItem   `json:"items"`
}

// GroupPackingByCategory builds the checklist layout: every standard
// category appears even when empty, custom categories found in the data are
// appended, and categories holding at least one item sort ahead of empty
// ones. Within the non-empty and empty partitions the order is stable —
// standard-list order first, then custom categories in first-appearance
// order — so the layout does not reflow unpredictably as items are toggled.
func GroupPackingByCategory(items []PackingItem) []PackingGroup {
	byCategory := make(map[PackingCategory][]PackingItem)
	var custom []PackingCategory
	for _, item := range items {
		c := normalizeCategory(item.Category)
		if _, seen := byCategory[c]; !seen && !c.Standard() {
			custom = append(custom, c)
		}
		byCategory[c] = append(byCategory[c], item)
	}

	groups := make([]PackingGroup, 0, len(PackingCategories)+len(custom))
	for _, c := range PackingCategories {
		groups = append(groups, PackingGroup{Category: c, Label: c.Label(), Items: byCategory[c]})
	}
	for _, c := range custom {
		groups = append(groups, PackingGroup{Category: c, Label: c.Label(), Items: byCategory[c]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Items) > 0 && len(groups[j].Items) == 0
	})
	return groups
}

// normalizeCategory lowercases free-form categories so "Snacks" and "snacks"
// land in the same group; empty categories fall back to "other".
func normalizeCategory(c PackingCategory) PackingCategory {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if s == "" {
		return PackingOther
	}
	return PackingCategory(s)
}

// Contributor is a packer's tally in the packing leaderboard.
type Contributor struct {
	User  UserRef `json:"user"`
	Count int     `json:"count"`
}

// PackingContributors tallies how many items each person has packed, counting
// only items that are currently packed and have a known packer. This is
// strictly about the packer role — who added an item plays no part here.
// Results are sorted descending by count, ties keeping first-packed order.
func PackingContributors(items []PackingItem) []Contributor {
	byUser := make(map[uuid.UUID]*Contributor)
	var order []uuid.UUID
	for _, item := range items {
		if !item.IsPacked || !item.Packer.Known() {
			continue
		}
		c, ok := byUser[item.Packer.ID]
		if !ok {
			c = &Contributor{User: item.Packer}
			byUser[item.Packer.ID] = c
			order = append(order, item.Packer.ID)
		}
		c.Count++
	}

	contributors := make([]Contributor, 0, len(order))
	for _, id := range order {
		contributors = append(contributors, *byUser[id])
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Count > contributors[j].Count
	})
	return contributors
}
