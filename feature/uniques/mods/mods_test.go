package mods

import (
	"testing"

	"unique-checker/feature/uniques/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clipboardTabula = "Rarity: Unique\r\n" +
	"Tabula Rasa\r\n" +
	"Simple Robe\r\n" +
	"--------\r\n" +
	"Sockets: W-W-W-W-W-W\r\n" +
	"--------\r\n" +
	"Item Level: 68\r\n" +
	"--------\r\n" +
	"+12% to Fire Resistance (implicit)\r\n" +
	"--------\r\n" +
	"Adds 3 to 7 Physical Damage\r\n" +
	"+45 to maximum Life\r\n" +
	"+25% to Cold Resistance (crafted)\r\n" +
	"--------\r\n" +
	"Corrupted\r\n"

func TestParseValues(t *testing.T) {
	item := models.Item{
		Name: "Foo Bar",
		ExplicitMods: []string{
			"Adds 3 to 7 Physical Damage",
			"Cannot be Frozen",
			"+25% to Cold Resistance (crafted)",
			"+45 to maximum Life",
		},
	}

	rec := ParseValues("exile", item)

	assert.Equal(t, "exile", rec.Username)
	assert.Equal(t, item, rec.Item)
	assert.Equal(t, [][]int{{3, 7}, {}, {45}}, rec.ExplicitModValues)
}

func TestParseValues_CraftedOnlySuffix(t *testing.T) {
	rec := ParseValues("exile", models.Item{
		Name:         "Foo",
		ExplicitMods: []string{"(crafted) 10% increased Damage", "5 charges (crafted) "},
	})

	assert.Equal(t, [][]int{{10}, {5}}, rec.ExplicitModValues)
}

func TestParseValues_Empty(t *testing.T) {
	rec := ParseValues("exile", models.Item{Name: "Foo"})

	assert.NotNil(t, rec.ExplicitModValues)
	assert.Empty(t, rec.ExplicitModValues)
	assert.NotNil(t, rec.Item.ExplicitMods)
}

func TestParseClipboard(t *testing.T) {
	item, err := ParseClipboard(clipboardTabula)
	require.NoError(t, err)

	assert.Equal(t, "Tabula Rasa Simple Robe", item.Name)
	assert.Equal(t, []string{
		"Adds 3 to 7 Physical Damage",
		"+45 to maximum Life",
		"+25% to Cold Resistance (crafted)",
	}, item.ExplicitMods)
}

func TestParseClipboard_ItemClassHeader(t *testing.T) {
	item, err := ParseClipboard("Item Class: Body Armours\n" + clipboardTabula)
	require.NoError(t, err)
	assert.Equal(t, "Tabula Rasa Simple Robe", item.Name)
}

func TestParseClipboard_NoModSection(t *testing.T) {
	raw := "Rarity: Unique\nFoo\nBar\n--------\nItem Level: 1\n--------\n+1 to Level (enchant)\n"

	item, err := ParseClipboard(raw)
	require.NoError(t, err)
	assert.Equal(t, "Foo Bar", item.Name)
	assert.Empty(t, item.ExplicitMods)
}

func TestParseClipboard_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"Empty", "", ErrNotUnique},
		{"Rare", "Rarity: Rare\nDoom Grip\nGloves\n--------\nItem Level: 3\n", ErrNotUnique},
		{"NoItemLevel", "Rarity: Unique\nFoo\nBar\n--------\n+1 to Strength\n", ErrStructuralParse},
		{"ShortHeader", "Rarity: Unique\nFoo\n--------\nItem Level: 3\n", ErrStructuralParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClipboard(tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
