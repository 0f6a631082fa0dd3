// Package botanics holds the botanic classification (order, family and
// subfamily) that timbers are filed under.
package botanics

import "github.com/JaimeStill/superbowl/pkg/validation"

type BotanicSystem struct {
	ID             int64  `json:"id"`
	Version        int    `json:"version"`
	Ordinal        int    `json:"ordinal"`
	OrderIndex     int    `json:"orderIndex"`
	FamilyIndex    int    `json:"familyIndex"`
	SubFamilyIndex int    `json:"subFamilyIndex"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	SubFamily      string `json:"subFamily"`
}

type RegisterCommand struct {
	Ordinal        int
	OrderIndex     int
	FamilyIndex    int
	SubFamilyIndex int
	Order          string
	Family         string
	SubFamily      string
}

type Form struct {
	Ordinal        string `json:"ordinal" validate:"omitempty,int"`
	OrderIndex     string `json:"orderIndex" validate:"omitempty,int"`
	FamilyIndex    string `json:"familyIndex" validate:"omitempty,int"`
	SubFamilyIndex string `json:"subFamilyIndex" validate:"omitempty,int"`
	Order          string `json:"order" validate:"required,max=64"`
	Family         string `json:"family" validate:"required,max=64"`
	SubFamily      string `json:"subFamily" validate:"max=64"`
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Ordinal:        validation.Int(f.Ordinal),
		OrderIndex:     validation.Int(f.OrderIndex),
		FamilyIndex:    validation.Int(f.FamilyIndex),
		SubFamilyIndex: validation.Int(f.SubFamilyIndex),
		Order:          f.Order,
		Family:         f.Family,
		SubFamily:      f.SubFamily,
	}
}
