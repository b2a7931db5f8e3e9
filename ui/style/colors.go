package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/drake/stixpick/entity"
)

// Base is the background that tinted chips are blended over.
const Base = "#0b1220"

// chipAlpha is the weight of the item color in a chip background.
const chipAlpha = 0.08

const fallbackColor = "#9e9e9e"

var itemColors = map[entity.Type]string{
	entity.TypeAttackPattern:         "#d4e157",
	entity.TypeCampaign:              "#8e24aa",
	entity.TypeChannel:               "#c2185b",
	entity.TypeNote:                  "#ea80fc",
	entity.TypeObservedData:          "#00acc1",
	entity.TypeOpinion:               "#1976d2",
	entity.TypeReport:                "#4caf50",
	entity.TypeGrouping:              "#689f38",
	entity.TypeCourseOfAction:        "#8bc34a",
	entity.TypeIndividual:            "#9c27b0",
	entity.TypeOrganization:          "#0288d1",
	entity.TypeSector:                "#673ab7",
	entity.TypeSystem:                "#8bc34a",
	entity.TypeIndicator:             "#ffa000",
	entity.TypeInfrastructure:        "#651fff",
	entity.TypeIntrusionSet:          "#bf360c",
	entity.TypePosition:              "#afb42b",
	entity.TypeCity:                  "#00bcd4",
	entity.TypeAdministrativeArea:    "#cddc39",
	entity.TypeCountry:               "#43a047",
	entity.TypeRegion:                "#33691e",
	entity.TypeMalware:               "#e91e63",
	entity.TypeMalwareAnalysis:       "#006064",
	entity.TypeThreatActorGroup:      "#880e4f",
	entity.TypeThreatActorIndividual: "#4a148c",
	entity.TypeTool:                  "#7e57c2",
	entity.TypeTask:                  "#303f9f",
	entity.TypeNarrative:             "#f9a825",
	entity.TypeVulnerability:         "#795548",
	entity.TypeEvent:                 "#00695c",
	entity.TypeIncident:              "#f44336",
	entity.TypeDataComponent:         "#00897b",
	entity.TypeDataSource:            "#ff7043",
	entity.TypeCaseIncident:          "#ad1457",
	entity.TypeCaseRfi:               "#3880b7",
	entity.TypeCaseRft:               "#ffa726",
	entity.TypeFeedback:              "#009688",
}

// observableColor is shared by every cyber observable.
const observableColor = "#ff9800"

// ItemColor returns the hex color of an entity type.
func ItemColor(t entity.Type) string {
	if c, ok := itemColors[t]; ok {
		return c
	}
	if t.IsObservable() {
		return observableColor
	}
	return fallbackColor
}

var chipCache, _ = lru.New[string, lipgloss.Style](256)

// TypeChip returns the chip style of an entity type: item color text over
// a faint tint of the same color.
func TypeChip(t entity.Type) lipgloss.Style {
	return tinted(ItemColor(t))
}

// LabelChip returns the chip style for a label color. Invalid colors use
// the fallback color.
func LabelChip(hex string) lipgloss.Style {
	return tinted(hex)
}

func tinted(hex string) lipgloss.Style {
	fg, ok := parse(hex)
	if !ok {
		fg, _ = parse(fallbackColor)
	}
	k := "t" + fg.Hex()
	if s, ok := chipCache.Get(k); ok {
		return s
	}
	base, _ := parse(Base)
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(base.BlendRgb(fg, chipAlpha).Hex()))
	chipCache.Add(k, s)
	return s
}

// MarkingChip returns a solid chip in the marking color with a readable
// foreground.
func MarkingChip(hex string) lipgloss.Style {
	bg, ok := parse(hex)
	if !ok {
		bg, _ = parse(fallbackColor)
	}
	k := "m" + bg.Hex()
	if s, ok := chipCache.Get(k); ok {
		return s
	}
	fg := "#ffffff"
	if l, _, _ := bg.Lab(); l > 0.6 {
		fg = "#000000"
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg.Hex()))
	chipCache.Add(k, s)
	return s
}

func parse(hex string) (colorful.Color, bool) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return colorful.Color{}, false
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
