package row

import "github.com/drake/stixpick/entity"

// Glyphs come from the geometric shapes block so each takes one cell and
// the gutter width never changes.
var icons = map[entity.Type]string{
	entity.TypeAttackPattern:         "◭",
	entity.TypeCampaign:              "▶",
	entity.TypeMalware:               "▲",
	entity.TypeMalwareAnalysis:       "▲",
	entity.TypeThreatActorGroup:      "▼",
	entity.TypeThreatActorIndividual: "▼",
	entity.TypeIntrusionSet:          "▼",
	entity.TypeTool:                  "◘",
	entity.TypeVulnerability:         "△",
	entity.TypeIncident:              "◍",
	entity.TypeIndicator:             "◎",
	entity.TypeReport:                "▤",
	entity.TypeNote:                  "▭",
	entity.TypeOpinion:               "▭",
	entity.TypeGrouping:              "▦",
	entity.TypeCity:                  "◈",
	entity.TypeCountry:               "◈",
	entity.TypeRegion:                "◈",
	entity.TypeAdministrativeArea:    "◈",
	entity.TypePosition:              "◈",
	entity.TypeIndividual:            "◐",
	entity.TypeOrganization:          "▣",
	entity.TypeSector:                "▣",
	entity.TypeSystem:                "▣",
}

// Icon returns the glyph drawn in the gutter for t.
func Icon(t entity.Type) string {
	if g, ok := icons[t]; ok {
		return g
	}
	if t.IsObservable() {
		return "◇"
	}
	return "◆"
}
