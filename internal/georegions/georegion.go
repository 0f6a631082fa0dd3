// Package georegions is the read-only catalogue of geographic regions
// timbers originate from.
package georegions

// DefaultCode preselects a region on forms that filter by region.
const DefaultCode = "EU"

type GeoRegion struct {
	ID      int64  `json:"id"`
	Version int    `json:"version"`
	Ordinal int    `json:"ordinal"`
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Region  string `json:"region"`
}
