// Package bowls is the core catalogue: every turned bowl with its timber,
// status and sale, and the modification log of the steps applied to it.
package bowls

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bowl is read from the bowl_views view, which joins in the codes of its
// references.
type Bowl struct {
	ID             int64            `json:"id"`
	Version        int              `json:"version"`
	Index          int              `json:"index"`
	Ordinal        int              `json:"ordinal"`
	ManufactureID  int64            `json:"manufactureId"`
	Year           int              `json:"year"`
	StatusID       int64            `json:"statusId"`
	StatusCode     string           `json:"statusCode"`
	TimberID       int64            `json:"timberId"`
	TimberCode     string           `json:"timberCode"`
	TimberName     string           `json:"timberName"`
	GeoRegionID    int64            `json:"geoRegionId"`
	GeoRegionCode  string           `json:"geoRegionCode"`
	TimberOriginID int64            `json:"timberOriginId"`
	CustomerID     *int64           `json:"customerId,omitempty"`
	ExhibitionID   *int64           `json:"exhibitionId,omitempty"`
	ImageName      string           `json:"imageName"`
	Price          decimal.Decimal  `json:"price"`
	SalesPrice     *decimal.Decimal `json:"salesPrice,omitempty"`
	SalesLocation  string           `json:"salesLocation"`
	SalesDate      *time.Time       `json:"salesDate,omitempty"`
	Comment        string           `json:"comment"`
	Sold           bool             `json:"sold"`
}

// ModStep is a kind of work applied to a bowl, such as rough turning or
// oiling.
type ModStep struct {
	ID      int64  `json:"id"`
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// Mod is one modification of a bowl with the measurements taken after it.
type Mod struct {
	ID               int64           `json:"id"`
	Version          int             `json:"version"`
	BowlID           int64           `json:"bowlId"`
	StepID           int64           `json:"bowlModStepId"`
	StepCode         string          `json:"bowlModStepCode"`
	Date             time.Time       `json:"date"`
	Diameter         decimal.Decimal `json:"diameter"`
	Height           decimal.Decimal `json:"height"`
	WallthicknessMin decimal.Decimal `json:"wallthicknessMin"`
	WallthicknessMax decimal.Decimal `json:"wallthicknessMax"`
	Granulation      int             `json:"granulation"`
	Tap              int             `json:"tap"`
	Recess           int             `json:"recess"`
	Surface          string          `json:"surface"`
	Comment          string          `json:"comment"`
	Items            []ModItem       `json:"items"`
}

// ModItem is a weight and moisture reading taken during a modification.
type ModItem struct {
	ID       int64           `json:"id"`
	Version  int             `json:"version"`
	ModID    int64           `json:"bowlModId"`
	Text     string          `json:"text"`
	Date     time.Time       `json:"date"`
	Weight   decimal.Decimal `json:"weight"`
	Moisture decimal.Decimal `json:"moisture"`
}

// PortfolioFilter narrows the portfolio. Nil fields and empty StatusCodes do
// not filter.
type PortfolioFilter struct {
	StatusCodes   []string
	TimberCode    *string
	GeoRegionCode *string
	Location      *string
	Year          *int
	Sold          *bool
}
