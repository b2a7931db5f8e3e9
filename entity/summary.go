package entity

import (
	"strings"
	"unicode/utf8"
)

// excerptLen is the rune budget for long free-text fields (note content).
const excerptLen = 30

// candidate is one step of a display-value fallback chain.
type candidate struct {
	has     func(Entity) bool
	extract func(Entity) string
}

type chain []candidate

func (c chain) resolve(e Entity) string {
	for _, step := range c {
		if step.has(e) {
			if v := flatten(step.extract(e)); v != "" {
				return v
			}
		}
	}
	return ""
}

func field(get func(Entity) string) candidate {
	return candidate{
		has:     func(e Entity) bool { return get(e) != "" },
		extract: get,
	}
}

func excerpt(get func(Entity) string, n int) candidate {
	return candidate{
		has: func(e Entity) bool { return get(e) != "" },
		extract: func(e Entity) string {
			s := flatten(get(e))
			if utf8.RuneCountInString(s) <= n {
				return s
			}
			return string([]rune(s)[:n]) + "..."
		},
	}
}

// flatten collapses runs of whitespace, including newlines, into single
// spaces so that a value always fits on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	name          = field(func(e Entity) string { return e.Name })
	description   = field(func(e Entity) string { return e.Description })
	abstract      = field(func(e Entity) string { return e.AttributeAbstract })
	content       = excerpt(func(e Entity) string { return e.Content }, excerptLen)
	opinion       = field(func(e Entity) string { return e.Opinion })
	resultName    = field(func(e Entity) string { return e.ResultName })
	observable    = field(func(e Entity) string { return e.ObservableValue })
	fileName      = field(func(e Entity) string { return e.ObservableName })
	observableDoc = field(func(e Entity) string { return e.XOpenCTIDescription })
)

var (
	namedWithDescription = chain{name, description}
	namedOnly            = chain{name}
	observableChain      = chain{observable, observableDoc}
)

// displayRules maps every catalog type to its fallback chain. A type missing
// here is unknown and renders with an empty value.
var displayRules = map[Type]chain{
	TypeAttackPattern:         namedWithDescription,
	TypeCampaign:              namedWithDescription,
	TypeChannel:               namedOnly,
	TypeNote:                  {abstract, content},
	TypeObservedData:          namedOnly,
	TypeOpinion:               {opinion},
	TypeReport:                namedWithDescription,
	TypeGrouping:              namedWithDescription,
	TypeCourseOfAction:        namedWithDescription,
	TypeIndividual:            namedWithDescription,
	TypeOrganization:          namedWithDescription,
	TypeSector:                namedWithDescription,
	TypeSystem:                namedWithDescription,
	TypeIndicator:             namedWithDescription,
	TypeInfrastructure:        namedWithDescription,
	TypeIntrusionSet:          namedWithDescription,
	TypePosition:              namedWithDescription,
	TypeCity:                  namedWithDescription,
	TypeAdministrativeArea:    namedWithDescription,
	TypeCountry:               namedWithDescription,
	TypeRegion:                namedWithDescription,
	TypeMalware:               namedWithDescription,
	TypeMalwareAnalysis:       {resultName},
	TypeThreatActorGroup:      namedWithDescription,
	TypeThreatActorIndividual: namedWithDescription,
	TypeTool:                  namedWithDescription,
	TypeTask:                  namedOnly,
	TypeNarrative:             namedOnly,
	TypeVulnerability:         namedWithDescription,
	TypeEvent:                 namedOnly,
	TypeIncident:              namedWithDescription,
	TypeDataComponent:         namedOnly,
	TypeDataSource:            namedOnly,
	TypeCaseIncident:          namedOnly,
	TypeCaseRfi:               namedOnly,
	TypeCaseRft:               namedOnly,
	TypeFeedback:              namedOnly,

	// StixFile exposes its name under an alias that wins over the hash value.
	TypeStixFile:             {fileName, observable, observableDoc},
	TypeIPv4Addr:             observableChain,
	TypeIPv6Addr:             observableChain,
	TypeDomainName:           observableChain,
	TypeURL:                  observableChain,
	TypeEmailAddr:            observableChain,
	TypeEmailMessage:         observableChain,
	TypeHostname:             observableChain,
	TypeMacAddr:              observableChain,
	TypeMutex:                observableChain,
	TypeProcess:              observableChain,
	TypeSoftware:             observableChain,
	TypeUserAccount:          observableChain,
	TypeWindowsRegistryKey:   observableChain,
	TypeArtifact:             observableChain,
	TypeDirectory:            observableChain,
	TypeAutonomousSystem:     observableChain,
	TypeX509Certificate:      observableChain,
	TypeNetworkTraffic:       observableChain,
	TypeText:                 observableChain,
	TypeUserAgent:            observableChain,
	TypeCryptocurrencyWallet: observableChain,
	TypeCryptographicKey:     observableChain,
	TypePhoneNumber:          observableChain,
	TypeBankAccount:          observableChain,
	TypePaymentCard:          observableChain,
	TypeMediaContent:         observableChain,
	TypePersona:              observableChain,
	TypeCredential:           observableChain,
	TypeTrackingNumber:       observableChain,
}

// Translator resolves the display label of an entity type.
type Translator interface {
	EntityType(t string) string
}

// Override lets callers replace the built-in display value of an entity.
// ok is false when the override has nothing to say about e.
type Override interface {
	DisplayValue(e Entity) (value string, ok bool)
}

// Summarizer derives the display strings of an entity. The zero value is
// usable and applies the built-in rules only.
type Summarizer struct {
	tr       Translator
	override Override
}

// NewSummarizer creates a summarizer. Both arguments may be nil.
func NewSummarizer(tr Translator, override Override) *Summarizer {
	return &Summarizer{tr: tr, override: override}
}

// TypeLabel returns the display label of the entity type, or the raw tag
// when no translation exists.
func (s *Summarizer) TypeLabel(e Entity) string {
	tag := string(e.Type)
	if tag == "" {
		return "Unknown"
	}
	if s == nil || s.tr == nil {
		return tag
	}
	if label := s.tr.EntityType(tag); label != "" {
		return label
	}
	return tag
}

// DisplayValue returns the best human-readable title for e. An override
// wins when it returns a value; unknown types yield "".
func (s *Summarizer) DisplayValue(e Entity) string {
	if s != nil && s.override != nil {
		if v, ok := s.override.DisplayValue(e); ok {
			return flatten(v)
		}
	}
	return DisplayValue(e)
}

// DisplayValue applies the built-in fallback chain of e.Type.
func DisplayValue(e Entity) string {
	rule, ok := displayRules[e.Type]
	if !ok {
		return ""
	}
	return rule.resolve(e)
}

// CreatorName returns the name of the entity author, if known.
func CreatorName(e Entity) (string, bool) {
	if e.CreatedBy == nil || e.CreatedBy.Name == "" {
		return "", false
	}
	return e.CreatedBy.Name, true
}

// Labels returns the attached labels in their given order.
func Labels(e Entity) []Label {
	return e.Labels
}

// Markings returns the attached markings in their given order.
func Markings(e Entity) []Marking {
	return e.Markings
}
