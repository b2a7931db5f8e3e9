package i18n

import "github.com/drake/stixpick/entity"

var english = map[entity.Type]string{
	entity.TypeAttackPattern:         "Attack pattern",
	entity.TypeCampaign:              "Campaign",
	entity.TypeChannel:               "Channel",
	entity.TypeNote:                  "Note",
	entity.TypeObservedData:          "Observed data",
	entity.TypeOpinion:               "Opinion",
	entity.TypeReport:                "Report",
	entity.TypeGrouping:              "Grouping",
	entity.TypeCourseOfAction:        "Course of action",
	entity.TypeIndividual:            "Individual",
	entity.TypeOrganization:          "Organization",
	entity.TypeSector:                "Sector",
	entity.TypeSystem:                "System",
	entity.TypeIndicator:             "Indicator",
	entity.TypeInfrastructure:        "Infrastructure",
	entity.TypeIntrusionSet:          "Intrusion set",
	entity.TypePosition:              "Position",
	entity.TypeCity:                  "City",
	entity.TypeAdministrativeArea:    "Area",
	entity.TypeCountry:               "Country",
	entity.TypeRegion:                "Region",
	entity.TypeMalware:               "Malware",
	entity.TypeMalwareAnalysis:       "Malware analysis",
	entity.TypeThreatActorGroup:      "Threat actor (group)",
	entity.TypeThreatActorIndividual: "Threat actor (individual)",
	entity.TypeTool:                  "Tool",
	entity.TypeTask:                  "Task",
	entity.TypeNarrative:             "Narrative",
	entity.TypeVulnerability:         "Vulnerability",
	entity.TypeEvent:                 "Event",
	entity.TypeIncident:              "Incident",
	entity.TypeDataComponent:         "Data component",
	entity.TypeDataSource:            "Data source",
	entity.TypeCaseIncident:          "Incident response",
	entity.TypeCaseRfi:               "Request for information",
	entity.TypeCaseRft:               "Request for takedown",
	entity.TypeFeedback:              "Feedback",

	entity.TypeStixFile:             "File",
	entity.TypeIPv4Addr:             "IPv4 address",
	entity.TypeIPv6Addr:             "IPv6 address",
	entity.TypeDomainName:           "Domain name",
	entity.TypeURL:                  "URL",
	entity.TypeEmailAddr:            "Email address",
	entity.TypeEmailMessage:         "Email message",
	entity.TypeHostname:             "Hostname",
	entity.TypeMacAddr:              "MAC address",
	entity.TypeMutex:                "Mutex",
	entity.TypeProcess:              "Process",
	entity.TypeSoftware:             "Software",
	entity.TypeUserAccount:          "User account",
	entity.TypeWindowsRegistryKey:   "Windows registry key",
	entity.TypeArtifact:             "Artifact",
	entity.TypeDirectory:            "Directory",
	entity.TypeAutonomousSystem:     "Autonomous system",
	entity.TypeX509Certificate:      "X509 certificate",
	entity.TypeNetworkTraffic:       "Network traffic",
	entity.TypeText:                 "Text",
	entity.TypeUserAgent:            "User agent",
	entity.TypeCryptocurrencyWallet: "Cryptocurrency wallet",
	entity.TypeCryptographicKey:     "Cryptographic key",
	entity.TypePhoneNumber:          "Phone number",
	entity.TypeBankAccount:          "Bank account",
	entity.TypePaymentCard:          "Payment card",
	entity.TypeMediaContent:         "Media content",
	entity.TypePersona:              "Persona",
	entity.TypeCredential:           "Credential",
	entity.TypeTrackingNumber:       "Tracking number",
}

// Types without a French entry fall back to English.
var french = map[entity.Type]string{
	entity.TypeAttackPattern:         "Technique d'attaque",
	entity.TypeCampaign:              "Campagne",
	entity.TypeChannel:               "Canal",
	entity.TypeNote:                  "Note",
	entity.TypeObservedData:          "Donnée observée",
	entity.TypeOpinion:               "Avis",
	entity.TypeReport:                "Rapport",
	entity.TypeGrouping:              "Regroupement",
	entity.TypeCourseOfAction:        "Plan d'action",
	entity.TypeIndividual:            "Individu",
	entity.TypeOrganization:          "Organisation",
	entity.TypeSector:                "Secteur",
	entity.TypeSystem:                "Système",
	entity.TypeIndicator:             "Indicateur",
	entity.TypeIntrusionSet:          "Mode opératoire",
	entity.TypeCity:                  "Ville",
	entity.TypeAdministrativeArea:    "Zone",
	entity.TypeCountry:               "Pays",
	entity.TypeRegion:                "Région",
	entity.TypeMalware:               "Logiciel malveillant",
	entity.TypeMalwareAnalysis:       "Analyse de malware",
	entity.TypeThreatActorGroup:      "Acteur de la menace (groupe)",
	entity.TypeThreatActorIndividual: "Acteur de la menace (individu)",
	entity.TypeTool:                  "Outil",
	entity.TypeTask:                  "Tâche",
	entity.TypeNarrative:             "Narratif",
	entity.TypeVulnerability:         "Vulnérabilité",
	entity.TypeEvent:                 "Événement",
	entity.TypeIncident:              "Incident",
	entity.TypeDataSource:            "Source de données",
	entity.TypeStixFile:              "Fichier",
	entity.TypeIPv4Addr:              "Adresse IPv4",
	entity.TypeIPv6Addr:              "Adresse IPv6",
	entity.TypeDomainName:            "Nom de domaine",
	entity.TypeEmailAddr:             "Adresse e-mail",
	entity.TypeHostname:              "Nom d'hôte",
	entity.TypeUserAccount:           "Compte utilisateur",
	entity.TypePhoneNumber:           "Numéro de téléphone",
}
