package naics

// Record is a resolved NAICS classification with hierarchy names filled in.
//
// SectorCode is always the first two characters of Code, SubsectorCode the
// first three, and IndustryGroupCode the first four. IndustryGroupCode is
// empty when the code is shorter than four digits. IndustryGroupName is
// empty when the industry group has no entry in the name table; that is a
// normal state, not an error.
type Record struct {
	Code              string `json:"code" yaml:"code"`
	Title             string `json:"title" yaml:"title"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	SectorCode        string `json:"sector_code" yaml:"sector_code"`
	SectorName        string `json:"sector_name,omitempty" yaml:"sector_name,omitempty"`
	SubsectorCode     string `json:"subsector_code,omitempty" yaml:"subsector_code,omitempty"`
	IndustryGroupCode string `json:"industry_group_code,omitempty" yaml:"industry_group_code,omitempty"`
	IndustryGroupName string `json:"industry_group_name,omitempty" yaml:"industry_group_name,omitempty"`
}

// Entry is a raw classification table row before hierarchy derivation.
type Entry struct {
	Code        string
	Title       string
	Description string
}

// deriveRecord expands a table entry into a full Record by prefix slicing
// and secondary name lookups.
func deriveRecord(e Entry) Record {
	rec := Record{
		Code:        e.Code,
		Title:       e.Title,
		Description: e.Description,
	}

	if len(e.Code) >= 2 {
		rec.SectorCode = e.Code[:2]
		rec.SectorName = SectorNames[rec.SectorCode]
	}
	if len(e.Code) >= 3 {
		rec.SubsectorCode = e.Code[:3]
	}
	if len(e.Code) >= 4 {
		rec.IndustryGroupCode = e.Code[:4]
		rec.IndustryGroupName = IndustryGroupNames[rec.IndustryGroupCode]
	}

	return rec
}
