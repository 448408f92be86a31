package render

// sectorCategoryLabels maps NAICS sector codes to the service category
// label shown in document metadata and breadcrumbs.
var sectorCategoryLabels = map[string]string{
	"22": "Utility Services",
	"23": "Construction Services",
	"42": "Trade Services",
	"44": "Retail Services",
	"45": "Retail Services",
	"48": "Transportation Services",
	"49": "Transportation Services",
	"51": "Information Services",
	"52": "Financial Services",
	"53": "Real Estate Services",
	"54": "Professional Services",
	"55": "Management Services",
	"56": "Administrative Services",
	"61": "Educational Services",
	"62": "Health Services",
	"71": "Entertainment Services",
	"72": "Hospitality Services",
	"81": "Personal Services",
	"92": "Public Services",
}

// defaultCategoryLabel is used when a sector code has no label entry.
const defaultCategoryLabel = "General Services"

// categoryLabel resolves a sector code to its category label.
func categoryLabel(sectorCode string) string {
	if label, ok := sectorCategoryLabels[sectorCode]; ok {
		return label
	}
	return defaultCategoryLabel
}

// propertyTable is the static schema describing the fields a service
// document is expected to carry. It does not vary per record.
var propertyTable = Table{
	Headers: []string{"Property", "Type", "Description"},
	Rows: [][]string{
		{"name", "Text", "The name of the service."},
		{"description", "Text", "A description of the service."},
		{"provider", "Organization | Person", "The service provider, service operator, or service performer."},
		{"serviceType", "Text", "The type of service being offered."},
		{"areaServed", "AdministrativeArea | GeoShape | Place | Text", "The geographic area where the service is provided."},
		{"category", "Text | Thing", "A category for the service."},
		{"hoursAvailable", "OpeningHoursSpecification", "The hours during which the service is available."},
		{"offers", "Offer", "An offer to provide the service."},
		{"availableChannel", "ServiceChannel", "A means of accessing the service, such as a website or phone number."},
	},
}
