package mods

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"unique-checker/feature/uniques/models"
)

const (
	// CraftedSuffix marks bench-crafted mods, which are not scored.
	CraftedSuffix = "(crafted)"

	sectionSeparator = "--------"
	rarityUnique     = "Rarity: Unique"
	itemClassPrefix  = "Item Class:"
	itemLevelPrefix  = "Item Level"
)

var (
	// ErrNotUnique is returned for clipboard text that is not a unique item.
	ErrNotUnique = errors.New("not a unique")
	// ErrStructuralParse is returned for unique item text missing a required section.
	ErrStructuralParse = errors.New("malformed item text")

	digitRun = regexp.MustCompile(`\d+`)
	lineEnd  = regexp.MustCompile(`\r?\n`)
)

// ParseValues builds the value record of an item: every digit run of every
// non-crafted explicit mod, in order.
func ParseValues(username string, item models.Item) models.ValueRecord {
	values := make([][]int, 0, len(item.ExplicitMods))
	for _, mod := range item.ExplicitMods {
		if strings.HasSuffix(mod, CraftedSuffix) {
			continue
		}
		values = append(values, digits(mod))
	}

	if item.ExplicitMods == nil {
		item.ExplicitMods = []string{}
	}

	return models.ValueRecord{
		Username:          username,
		Item:              item,
		ExplicitModValues: values,
	}
}

func digits(line string) []int {
	runs := digitRun.FindAllString(line, -1)
	out := make([]int, 0, len(runs))
	for _, run := range runs {
		// runs are all digits; the only possible error is range, which clips
		n, _ := strconv.Atoi(run)
		out = append(out, n)
	}
	return out
}

// ParseClipboard extracts an item from the text the game copies for a
// hovered item.
func ParseClipboard(raw string) (models.Item, error) {
	sections := splitSections(raw)
	if len(sections) == 0 {
		return models.Item{}, ErrNotUnique
	}

	header := sections[0]
	if strings.HasPrefix(header[0], itemClassPrefix) {
		header = header[1:]
		if len(header) == 0 {
			return models.Item{}, ErrNotUnique
		}
	}
	if !strings.HasPrefix(header[0], rarityUnique) {
		return models.Item{}, ErrNotUnique
	}

	levelIdx := -1
	for i, section := range sections {
		if strings.HasPrefix(section[0], itemLevelPrefix) {
			levelIdx = i
			break
		}
	}
	if levelIdx == -1 {
		return models.Item{}, fmt.Errorf("%w: no item level section", ErrStructuralParse)
	}

	if len(header) < 3 {
		return models.Item{}, fmt.Errorf("%w: header has %d lines", ErrStructuralParse, len(header))
	}

	explicitMods := []string{}
	for i := levelIdx + 1; i < len(sections); i++ {
		first := sections[i][0]
		if strings.HasSuffix(first, "(implicit)") || strings.HasSuffix(first, "(enchant)") {
			continue
		}
		explicitMods = sections[i]
		break
	}

	return models.Item{
		Name:         header[1] + " " + header[2],
		ExplicitMods: explicitMods,
	}, nil
}

func splitSections(raw string) [][]string {
	var sections [][]string
	for _, chunk := range strings.Split(raw, sectionSeparator) {
		var lines []string
		for _, line := range lineEnd.Split(chunk, -1) {
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			sections = append(sections, lines)
		}
	}
	return sections
}
