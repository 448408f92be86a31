package catalog

// Builtin returns the sample service catalog used when no catalog file is
// configured. Codes reference the builtin classification table; Wikidata
// identifiers reference the corresponding service concepts.
func Builtin() []Service {
	return []Service{
		{
			Name:        "Custom Software Development",
			NAICS:       "541511",
			UNSPSC:      "81111500",
			Wikidata:    "Q638608",
			Category:    "Professional Services",
			Subcategory: "Technology",
		},
		{
			Name:        "Computer Systems Design",
			NAICS:       "541512",
			UNSPSC:      "81111800",
			Wikidata:    "Q1077784",
			Category:    "Professional Services",
			Subcategory: "Technology",
		},
		{
			Name:        "Engineering Services",
			NAICS:       "541330",
			UNSPSC:      "81100000",
			Wikidata:    "Q2334804",
			Category:    "Professional Services",
			Subcategory: "Engineering",
		},
		{
			Name:        "Management Consulting",
			NAICS:       "541611",
			UNSPSC:      "80101500",
			Wikidata:    "Q1151067",
			Category:    "Professional Services",
			Subcategory: "Consulting",
		},
		{
			Name:        "Marketing Consulting",
			NAICS:       "541613",
			UNSPSC:      "80141600",
			Category:    "Professional Services",
			Subcategory: "Consulting",
		},
		{
			Name:        "Web Hosting",
			NAICS:       "518210",
			UNSPSC:      "81112000",
			Wikidata:    "Q164993",
			Category:    "Professional Services",
			Subcategory: "Technology",
		},
		{
			Name:        "Commercial Banking",
			NAICS:       "522110",
			UNSPSC:      "84120000",
			Wikidata:    "Q22687",
			Category:    "Financial Services",
			Subcategory: "Banking",
		},
		{
			Name:        "Insurance Brokerage",
			NAICS:       "524210",
			UNSPSC:      "84130000",
			Wikidata:    "Q1371925",
			Category:    "Financial Services",
			Subcategory: "Insurance",
		},
		{
			Name:        "Full-Service Restaurant",
			NAICS:       "722511",
			UNSPSC:      "90101600",
			Wikidata:    "Q11707",
			Category:    "Hospitality",
			Subcategory: "Dining",
		},
		{
			Name:        "Limited-Service Restaurant",
			NAICS:       "722513",
			UNSPSC:      "90101700",
			Category:    "Hospitality",
			Subcategory: "Dining",
		},
		{
			Name:        "Elementary and Secondary Schools",
			NAICS:       "611110",
			UNSPSC:      "86121500",
			Wikidata:    "Q9842",
			Category:    "Education",
			Subcategory: "Primary and Secondary",
		},
		{
			Name:        "Janitorial Services",
			NAICS:       "561720",
			UNSPSC:      "76111500",
			Category:    "Facility Services",
			Subcategory: "Cleaning",
		},
		{
			Name:        "General Automotive Repair",
			NAICS:       "811111",
			UNSPSC:      "78180100",
			Wikidata:    "Q617296",
			Category:    "Automotive",
			Subcategory: "Repair",
		},
		{
			Name:     "Temporary Help Services",
			NAICS:    "561320",
			UNSPSC:   "80111600",
			Wikidata: "Q1064606",
			// No category; lands in the Uncategorized bucket.
		},
	}
}
