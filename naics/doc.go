// Package naics provides the NAICS industry classification registry.
//
// NAICS (North American Industry Classification System) codes are
// hierarchical: the first two digits identify the sector, the first three
// the subsector, and the first four the industry group. A full industry
// code is five or six digits.
//
// The package ships a static table of codes relevant to service-type
// documentation. Lookups are exact-match and side-effect free:
//
//	registry := naics.NewRegistry()
//	rec, err := registry.Resolve("541511")
//	if err != nil {
//	    // naics.ErrNotFound for unknown codes
//	}
//	fmt.Println(rec.SectorName) // "Professional, Scientific, and Technical Services"
//
// Hierarchy fields on the resolved record are derived purely by string
// prefix slicing; codes are never interpreted numerically.
package naics
