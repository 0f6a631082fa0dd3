// Package timbers is the catalogue of wood species bowls are turned from,
// filed by geographic region and botanic system.
package timbers

import "github.com/JaimeStill/superbowl/pkg/validation"

// DefaultCode preselects a timber on the bowl form.
const DefaultCode = "MLSY"

// Timber carries its mechanical properties as recorded text; sources quote
// ranges and units inconsistently.
type Timber struct {
	ID                 int64  `json:"id"`
	Version            int    `json:"version"`
	Index              int    `json:"index"`
	GeoRegionID        int64  `json:"geoRegionId"`
	GeoRegionCode      string `json:"geoRegionCode"`
	BotanicSystemID    int64  `json:"botanicSystemId"`
	Type               string `json:"type"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	ImageName          string `json:"imageName"`
	AcademicName       string `json:"academicName"`
	GrossDensity       string `json:"grossDensity"`
	TensileStrength    string `json:"tensileStrength"`
	BurstStrength      string `json:"burstStrength"`
	BendingStrength    string `json:"bendingStrength"`
	ShearStrength      string `json:"shearStrength"`
	BrinellHardnessOne string `json:"brinellHardnessOne"`
	BrinellHardnessTwo string `json:"brinellHardnessTwo"`
	TangentShrinkage   string `json:"tangentShrinkage"`
	RadialShrinkage    string `json:"radialShrinkage"`
}

type RegisterCommand struct {
	Index           int
	GeoRegionID     int64
	BotanicSystemID int64
	Properties      Properties
}

// Properties are the descriptive columns shared by form and entity.
type Properties struct {
	Type               string
	Code               string
	Name               string
	ImageName          string
	AcademicName       string
	GrossDensity       string
	TensileStrength    string
	BurstStrength      string
	BendingStrength    string
	ShearStrength      string
	BrinellHardnessOne string
	BrinellHardnessTwo string
	TangentShrinkage   string
	RadialShrinkage    string
}

type Form struct {
	Index              string `json:"index" validate:"omitempty,int"`
	GeoRegionID        string `json:"geoRegionId" validate:"required,int"`
	GeoRegionCode      string `json:"geoRegionCode" validate:"required,max=8"`
	BotanicSystemID    string `json:"botanicSystemId" validate:"required,int"`
	Type               string `json:"type" validate:"required,max=32"`
	Code               string `json:"code" validate:"required,max=8"`
	Name               string `json:"name" validate:"required,max=64"`
	ImageName          string `json:"imageName" validate:"max=128"`
	AcademicName       string `json:"academicName" validate:"max=128"`
	GrossDensity       string `json:"grossDensity" validate:"max=32"`
	TensileStrength    string `json:"tensileStrength" validate:"max=32"`
	BurstStrength      string `json:"burstStrength" validate:"max=32"`
	BendingStrength    string `json:"bendingStrength" validate:"max=32"`
	ShearStrength      string `json:"shearStrength" validate:"max=32"`
	BrinellHardnessOne string `json:"brinellHardnessOne" validate:"max=32"`
	BrinellHardnessTwo string `json:"brinellHardnessTwo" validate:"max=32"`
	TangentShrinkage   string `json:"tangentShrinkage" validate:"max=32"`
	RadialShrinkage    string `json:"radialShrinkage" validate:"max=32"`
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Index:           validation.Int(f.Index),
		GeoRegionID:     validation.Int64(f.GeoRegionID),
		BotanicSystemID: validation.Int64(f.BotanicSystemID),
		Properties: Properties{
			Type:               f.Type,
			Code:               f.Code,
			Name:               f.Name,
			ImageName:          f.ImageName,
			AcademicName:       f.AcademicName,
			GrossDensity:       f.GrossDensity,
			TensileStrength:    f.TensileStrength,
			BurstStrength:      f.BurstStrength,
			BendingStrength:    f.BendingStrength,
			ShearStrength:      f.ShearStrength,
			BrinellHardnessOne: f.BrinellHardnessOne,
			BrinellHardnessTwo: f.BrinellHardnessTwo,
			TangentShrinkage:   f.TangentShrinkage,
			RadialShrinkage:    f.RadialShrinkage,
		},
	}
}
