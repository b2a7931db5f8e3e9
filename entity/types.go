// Package entity holds the threat-intel object model shown by the picker
// and the pure functions that summarize an entity for display.
package entity

import "time"

// Type is the entity_type discriminant.
type Type string

// Domain objects.
const (
	TypeAttackPattern         Type = "Attack-Pattern"
	TypeCampaign              Type = "Campaign"
	TypeChannel               Type = "Channel"
	TypeNote                  Type = "Note"
	TypeObservedData          Type = "Observed-Data"
	TypeOpinion               Type = "Opinion"
	TypeReport                Type = "Report"
	TypeGrouping              Type = "Grouping"
	TypeCourseOfAction        Type = "Course-Of-Action"
	TypeIndividual            Type = "Individual"
	TypeOrganization          Type = "Organization"
	TypeSector                Type = "Sector"
	TypeSystem                Type = "System"
	TypeIndicator             Type = "Indicator"
	TypeInfrastructure        Type = "Infrastructure"
	TypeIntrusionSet          Type = "Intrusion-Set"
	TypePosition              Type = "Position"
	TypeCity                  Type = "City"
	TypeAdministrativeArea    Type = "Administrative-Area"
	TypeCountry               Type = "Country"
	TypeRegion                Type = "Region"
	TypeMalware               Type = "Malware"
	TypeMalwareAnalysis       Type = "Malware-Analysis"
	TypeThreatActorGroup      Type = "Threat-Actor-Group"
	TypeThreatActorIndividual Type = "Threat-Actor-Individual"
	TypeTool                  Type = "Tool"
	TypeTask                  Type = "Task"
	TypeNarrative             Type = "Narrative"
	TypeVulnerability         Type = "Vulnerability"
	TypeEvent                 Type = "Event"
	TypeIncident              Type = "Incident"
	TypeDataComponent         Type = "Data-Component"
	TypeDataSource            Type = "Data-Source"
	TypeCaseIncident          Type = "Case-Incident"
	TypeCaseRfi               Type = "Case-Rfi"
	TypeCaseRft               Type = "Case-Rft"
	TypeFeedback              Type = "Feedback"
)

// Cyber observables.
const (
	TypeStixFile             Type = "StixFile"
	TypeIPv4Addr             Type = "IPv4-Addr"
	TypeIPv6Addr             Type = "IPv6-Addr"
	TypeDomainName           Type = "Domain-Name"
	TypeURL                  Type = "Url"
	TypeEmailAddr            Type = "Email-Addr"
	TypeEmailMessage         Type = "Email-Message"
	TypeHostname             Type = "Hostname"
	TypeMacAddr              Type = "Mac-Addr"
	TypeMutex                Type = "Mutex"
	TypeProcess              Type = "Process"
	TypeSoftware             Type = "Software"
	TypeUserAccount          Type = "User-Account"
	TypeWindowsRegistryKey   Type = "Windows-Registry-Key"
	TypeArtifact             Type = "Artifact"
	TypeDirectory            Type = "Directory"
	TypeAutonomousSystem     Type = "Autonomous-System"
	TypeX509Certificate      Type = "X509-Certificate"
	TypeNetworkTraffic       Type = "Network-Traffic"
	TypeText                 Type = "Text"
	TypeUserAgent            Type = "User-Agent"
	TypeCryptocurrencyWallet Type = "Cryptocurrency-Wallet"
	TypeCryptographicKey     Type = "Cryptographic-Key"
	TypePhoneNumber          Type = "Phone-Number"
	TypeBankAccount          Type = "Bank-Account"
	TypePaymentCard          Type = "Payment-Card"
	TypeMediaContent         Type = "Media-Content"
	TypePersona              Type = "Persona"
	TypeCredential           Type = "Credential"
	TypeTrackingNumber       Type = "Tracking-Number"
)

var domainTypes = []Type{
	TypeAttackPattern, TypeCampaign, TypeChannel, TypeNote, TypeObservedData,
	TypeOpinion, TypeReport, TypeGrouping, TypeCourseOfAction, TypeIndividual,
	TypeOrganization, TypeSector, TypeSystem, TypeIndicator, TypeInfrastructure,
	TypeIntrusionSet, TypePosition, TypeCity, TypeAdministrativeArea,
	TypeCountry, TypeRegion, TypeMalware, TypeMalwareAnalysis,
	TypeThreatActorGroup, TypeThreatActorIndividual, TypeTool, TypeTask,
	TypeNarrative, TypeVulnerability, TypeEvent, TypeIncident,
	TypeDataComponent, TypeDataSource, TypeCaseIncident, TypeCaseRfi,
	TypeCaseRft, TypeFeedback,
}

var observableTypes = []Type{
	TypeStixFile, TypeIPv4Addr, TypeIPv6Addr, TypeDomainName, TypeURL,
	TypeEmailAddr, TypeEmailMessage, TypeHostname, TypeMacAddr, TypeMutex,
	TypeProcess, TypeSoftware, TypeUserAccount, TypeWindowsRegistryKey,
	TypeArtifact, TypeDirectory, TypeAutonomousSystem, TypeX509Certificate,
	TypeNetworkTraffic, TypeText, TypeUserAgent, TypeCryptocurrencyWallet,
	TypeCryptographicKey, TypePhoneNumber, TypeBankAccount, TypePaymentCard,
	TypeMediaContent, TypePersona, TypeCredential, TypeTrackingNumber,
}

// Catalog returns every known entity type, domain objects first.
func Catalog() []Type {
	out := make([]Type, 0, len(domainTypes)+len(observableTypes))
	out = append(out, domainTypes...)
	return append(out, observableTypes...)
}

// IsObservable reports whether t is a known cyber observable type.
func (t Type) IsObservable() bool {
	for _, o := range observableTypes {
		if o == t {
			return true
		}
	}
	return false
}

// Known reports whether t belongs to the catalog.
func (t Type) Known() bool {
	_, ok := displayRules[t]
	return ok
}

// CreatorRef points at the identity that authored an entity.
type CreatorRef struct {
	ID   string `yaml:"id"`
	Type string `yaml:"entity_type"`
	Name string `yaml:"name"`
}

// Label is a free-text colored tag.
type Label struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
	Color string `yaml:"color"`
}

// Marking is an access/classification marking definition.
type Marking struct {
	ID             string `yaml:"id"`
	DefinitionType string `yaml:"definition_type"`
	Definition     string `yaml:"definition"`
	Order          int    `yaml:"x_opencti_order"`
	Color          string `yaml:"x_opencti_color"`
}

// Entity is one catalog object. The set of meaningful fields depends on
// Type; an empty string means the field is absent for this record.
type Entity struct {
	ID         string `yaml:"id"`
	StandardID string `yaml:"standard_id"`
	Type       Type   `yaml:"entity_type"`

	Name                string `yaml:"name"`
	Description         string `yaml:"description"`
	XMitreID            string `yaml:"x_mitre_id"`
	AttributeAbstract   string `yaml:"attribute_abstract"`
	Content             string `yaml:"content"`
	Opinion             string `yaml:"opinion"`
	ResultName          string `yaml:"result_name"`
	ObservableValue     string `yaml:"observable_value"`
	ObservableName      string `yaml:"observableName"`
	XOpenCTIDescription string `yaml:"x_opencti_description"`

	CreatedAt time.Time `yaml:"-"`
	FirstSeen time.Time `yaml:"-"`
	LastSeen  time.Time `yaml:"-"`
	Published time.Time `yaml:"-"`
	ValidFrom time.Time `yaml:"-"`

	CreatedBy *CreatorRef `yaml:"createdBy"`
	Labels    []Label     `yaml:"-"`
	Markings  []Marking   `yaml:"-"`
}
