package bowls

import "github.com/JaimeStill/superbowl/pkg/validation"

// Form registers a new bowl.
type Form struct {
	Index          string `json:"index" validate:"omitempty,int"`
	Ordinal        string `json:"ordinal" validate:"required,int"`
	GeoRegionID    string `json:"geoRegionId" validate:"required,int"`
	ManufactureID  string `json:"manufactureId" validate:"required,int"`
	StatusID       string `json:"statusId" validate:"required,int"`
	TimberID       string `json:"timberId" validate:"required,int"`
	TimberOriginID string `json:"timberOriginId" validate:"required,int"`
	CustomerID     string `json:"customerId" validate:"omitempty,int"`
	ExhibitionID   string `json:"exhibitionId" validate:"omitempty,int"`
	ImageName      string `json:"imageName" validate:"max=128"`
	Price          string `json:"price" validate:"required,decimal"`
	SalesPrice     string `json:"salesPrice" validate:"omitempty,decimal"`
	SalesLocation  string `json:"salesLocation" validate:"max=64"`
	SalesDate      string `json:"salesDate" validate:"omitempty,date"`
	Comment        string `json:"comment" validate:"max=1024"`
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Index:          validation.Int(f.Index),
		Ordinal:        validation.Int(f.Ordinal),
		ManufactureID:  validation.Int64(f.ManufactureID),
		StatusID:       validation.Int64(f.StatusID),
		TimberID:       validation.Int64(f.TimberID),
		TimberOriginID: validation.Int64(f.TimberOriginID),
		CustomerID:     validation.OptionalInt64(f.CustomerID),
		ExhibitionID:   validation.OptionalInt64(f.ExhibitionID),
		ImageName:      f.ImageName,
		Price:          validation.Decimal(f.Price),
		SalesPrice:     validation.OptionalDecimal(f.SalesPrice),
		SalesLocation:  f.SalesLocation,
		SalesDate:      validation.OptionalDate(f.SalesDate),
		Comment:        f.Comment,
	}
}

// EditForm changes status, origin and price of an existing bowl.
type EditForm struct {
	BowlID         string `json:"bowlId" validate:"required,int"`
	Version        string `json:"version" validate:"required,int"`
	StatusID       string `json:"statusId" validate:"required,int"`
	TimberOriginID string `json:"timberOriginId" validate:"required,int"`
	Price          string `json:"price" validate:"required,decimal"`
	Comment        string `json:"comment" validate:"max=1024"`
}

func (f EditForm) Command() EditCommand {
	return EditCommand{
		ID:             validation.Int64(f.BowlID),
		Version:        validation.Int(f.Version),
		StatusID:       validation.Int64(f.StatusID),
		TimberOriginID: validation.Int64(f.TimberOriginID),
		Price:          validation.Decimal(f.Price),
		Comment:        f.Comment,
	}
}

// SalesForm is EditForm plus the sale of the bowl.
type SalesForm struct {
	EditForm
	CustomerID    string `json:"customerId" validate:"omitempty,int"`
	ExhibitionID  string `json:"exhibitionId" validate:"omitempty,int"`
	SalesPrice    string `json:"salesPrice" validate:"omitempty,decimal"`
	SalesLocation string `json:"salesLocation" validate:"max=64"`
	SalesDate     string `json:"salesDate" validate:"omitempty,date"`
}

func (f SalesForm) Command() SalesCommand {
	return SalesCommand{
		EditCommand:   f.EditForm.Command(),
		CustomerID:    validation.OptionalInt64(f.CustomerID),
		ExhibitionID:  validation.OptionalInt64(f.ExhibitionID),
		SalesPrice:    validation.OptionalDecimal(f.SalesPrice),
		SalesLocation: f.SalesLocation,
		SalesDate:     validation.OptionalDate(f.SalesDate),
	}
}

// ModForm records a modification step. Lengths are millimetres.
type ModForm struct {
	BowlID           string `json:"bowlId" validate:"required,int"`
	StepID           string `json:"bowlModStepId" validate:"required,int"`
	Date             string `json:"date" validate:"required,date"`
	Diameter         string `json:"diameter" validate:"required,decimal"`
	Height           string `json:"height" validate:"required,decimal"`
	WallthicknessMin string `json:"wallthicknessMin" validate:"required,decimal"`
	WallthicknessMax string `json:"wallthicknessMax" validate:"required,decimal"`
	Granulation      string `json:"granulation" validate:"required,int"`
	Tap              string `json:"tap" validate:"required,int"`
	Recess           string `json:"recess" validate:"required,int"`
	Surface          string `json:"surface" validate:"required,max=64"`
	Comment          string `json:"comment" validate:"max=1024"`
}

func (f ModForm) Command() ModCommand {
	return ModCommand{
		BowlID:           validation.Int64(f.BowlID),
		StepID:           validation.Int64(f.StepID),
		Date:             validation.Date(f.Date),
		Diameter:         validation.Decimal(f.Diameter),
		Height:           validation.Decimal(f.Height),
		WallthicknessMin: validation.Decimal(f.WallthicknessMin),
		WallthicknessMax: validation.Decimal(f.WallthicknessMax),
		Granulation:      validation.Int(f.Granulation),
		Tap:              validation.Int(f.Tap),
		Recess:           validation.Int(f.Recess),
		Surface:          f.Surface,
		Comment:          f.Comment,
	}
}

// ModItemForm records a reading. Weight is grams, moisture percent.
type ModItemForm struct {
	BowlID   string `json:"bowlId" validate:"required,int"`
	ModID    string `json:"bowlModId" validate:"required,int"`
	Text     string `json:"text" validate:"max=255"`
	Date     string `json:"date" validate:"required,date"`
	Weight   string `json:"weight" validate:"required,decimal"`
	Moisture string `json:"moisture" validate:"required,decimal"`
}

func (f ModItemForm) Command() ModItemCommand {
	return ModItemCommand{
		ModID:    validation.Int64(f.ModID),
		Text:     f.Text,
		Date:     validation.Date(f.Date),
		Weight:   validation.Decimal(f.Weight),
		Moisture: validation.Decimal(f.Moisture),
	}
}
