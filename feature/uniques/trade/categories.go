package trade

import "strings"

// Category is a trade site item category.
type Category struct {
	// Label is the name shown to the player.
	Label string `json:"label"`
	// Key is the category option sent to the search endpoint.
	Key string `json:"key"`
}

var catalog = []Category{
	{"Flask", "flask"},
	{"Amulet", "accessory.amulet"},
	{"Ring", "accessory.ring"},
	{"Claw", "weapon.claw"},
	{"Dagger", "weapon.dagger"},
	{"Wand", "weapon.wand"},
	{"One-Handed Sword", "weapon.onesword"},
	{"Two-Handed Sword", "weapon.twosword"},
	{"One-Handed Axe", "weapon.oneaxe"},
	{"Two-Handed Axe", "weapon.twoaxe"},
	{"One-Handed Mace", "weapon.onemace"},
	{"Two-Handed Mace", "weapon.twomace"},
	{"Bow", "weapon.bow"},
	{"Staff", "weapon.staff"},
	{"Quiver", "armour.quiver"},
	{"Belt", "accessory.belt"},
	{"Gloves", "armour.gloves"},
	{"Boots", "armour.boots"},
	{"Body Armour", "armour.chest"},
	{"Helmet", "armour.helmet"},
	{"Shield", "armour.shield"},
	{"Map", "map"},
	{"Jewel", "jewel"},
	{"Watchstone", "watchstone"},
}

// Categories returns the synced categories in sync order.
func Categories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCategory finds a category by label or key, ignoring case.
func LookupCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range catalog {
		if strings.EqualFold(c.Label, s) || strings.EqualFold(c.Key, s) {
			return c, true
		}
	}
	return Category{}, false
}
