package trade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	cats := Categories()

	assert.Len(t, cats, 24)
	assert.Equal(t, Category{Label: "Flask", Key: "flask"}, cats[0])
	assert.Equal(t, Category{Label: "Watchstone", Key: "watchstone"}, cats[len(cats)-1])

	cats[0].Label = "changed"
	assert.Equal(t, "Flask", Categories()[0].Label)
}

func TestLookupCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Body Armour", "armour.chest", true},
		{"body armour", "armour.chest", true},
		{"ARMOUR.CHEST", "armour.chest", true},
		{" ring ", "accessory.ring", true},
		{"Sceptre", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := LookupCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.Key)
		})
	}
}

func TestConfigDurations(t *testing.T) {
	cfg := Config{ThrottleMs: 6500, MaxBackoffMs: 60000}

	assert.Equal(t, 6500*time.Millisecond, cfg.Throttle())
	assert.Equal(t, 13*time.Second, cfg.RetryBackoff())
	assert.Equal(t, time.Minute, cfg.MaxBackoff())
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}
