package bowls

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterCommand struct {
	Index          int
	Ordinal        int
	ManufactureID  int64
	StatusID       int64
	TimberID       int64
	TimberOriginID int64
	CustomerID     *int64
	ExhibitionID   *int64
	ImageName      string
	Price          decimal.Decimal
	SalesPrice     *decimal.Decimal
	SalesLocation  string
	SalesDate      *time.Time
	Comment        string
}

// EditCommand changes the workflow state of a bowl. Version must match the
// stored row.
type EditCommand struct {
	ID             int64
	Version        int
	StatusID       int64
	TimberOriginID int64
	Price          decimal.Decimal
	Comment        string
}

// SalesCommand records or clears a sale. A nil CustomerID clears the sale
// fields.
type SalesCommand struct {
	EditCommand
	CustomerID    *int64
	ExhibitionID  *int64
	SalesPrice    *decimal.Decimal
	SalesLocation string
	SalesDate     *time.Time
}

type ModCommand struct {
	BowlID           int64
	StepID           int64
	Date             time.Time
	Diameter         decimal.Decimal
	Height           decimal.Decimal
	WallthicknessMin decimal.Decimal
	WallthicknessMax decimal.Decimal
	Granulation      int
	Tap              int
	Recess           int
	Surface          string
	Comment          string
}

type ModItemCommand struct {
	ModID    int64
	Text     string
	Date     time.Time
	Weight   decimal.Decimal
	Moisture decimal.Decimal
}

// Validate checks the rules spanning fields.
func (c ModCommand) Validate() error {
	if c.WallthicknessMax.LessThan(c.WallthicknessMin) {
		return ErrInvalidMeasurement
	}
	return nil
}

// Validate checks that a sale names its price and date.
func (c SalesCommand) Validate() error {
	if c.CustomerID == nil {
		return nil
	}
	if c.SalesPrice == nil || c.SalesDate == nil {
		return ErrIncompleteSale
	}
	return nil
}
