// Package timberorigins records where and when the wood of a timber was
// sourced.
package timberorigins

import (
	"time"

	"github.com/JaimeStill/superbowl/pkg/validation"
)

// DefaultID preselects an origin on the bowl form.
const DefaultID int64 = 1

type TimberOrigin struct {
	ID           int64      `json:"id"`
	Version      int        `json:"version"`
	TimberID     int64      `json:"timberId"`
	TimberCode   string     `json:"timberCode"`
	Index        int        `json:"index"`
	City         string     `json:"city"`
	Location     string     `json:"location"`
	LocationText string     `json:"locationText"`
	Cutdown      *time.Time `json:"cutdown,omitempty"`
	Comment      string     `json:"comment"`
}

type RegisterCommand struct {
	TimberID     int64
	Index        int
	City         string
	Location     string
	LocationText string
	Cutdown      *time.Time
	Comment      string
}

type Form struct {
	TimberID     string `json:"timberId" validate:"required,int"`
	Index        string `json:"index" validate:"omitempty,int"`
	City         string `json:"city" validate:"required,max=64"`
	Location     string `json:"location" validate:"required,max=128"`
	LocationText string `json:"locationText" validate:"max=255"`
	Cutdown      string `json:"cutdown" validate:"omitempty,date"`
	Comment      string `json:"comment" validate:"max=255"`
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		TimberID:     validation.Int64(f.TimberID),
		Index:        validation.Int(f.Index),
		City:         f.City,
		Location:     f.Location,
		LocationText: f.LocationText,
		Cutdown:      validation.OptionalDate(f.Cutdown),
		Comment:      f.Comment,
	}
}
