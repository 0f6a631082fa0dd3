// Package exhibitions records the shows bowls have been exhibited at.
package exhibitions

import (
	"time"

	"github.com/JaimeStill/superbowl/pkg/validation"
)

type Exhibition struct {
	ID          int64     `json:"id"`
	Version     int       `json:"version"`
	Index       int       `json:"index"`
	Name        string    `json:"name"`
	Institution string    `json:"institution"`
	Year        int       `json:"year"`
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Comment     string    `json:"comment"`
}

type RegisterCommand struct {
	Index       int
	Name        string
	Institution string
	Year        int
	DateFrom    time.Time
	DateTo      time.Time
	City        string
	Country     string
	Comment     string
}

type Form struct {
	Index       string `json:"index" validate:"omitempty,int"`
	Name        string `json:"name" validate:"required,max=128"`
	Institution string `json:"institution" validate:"max=128"`
	Year        string `json:"year" validate:"required,year"`
	DateFrom    string `json:"dateFrom" validate:"required,date"`
	DateTo      string `json:"dateTo" validate:"required,date"`
	City        string `json:"city" validate:"max=64"`
	Country     string `json:"country" validate:"max=64"`
	Comment     string `json:"comment" validate:"max=255"`
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Index:       validation.Int(f.Index),
		Name:        f.Name,
		Institution: f.Institution,
		Year:        validation.Int(f.Year),
		DateFrom:    validation.Date(f.DateFrom),
		DateTo:      validation.Date(f.DateTo),
		City:        f.City,
		Country:     f.Country,
		Comment:     f.Comment,
	}
}

// Validate checks the rules spanning fields.
func (c RegisterCommand) Validate() error {
	if c.DateTo.Before(c.DateFrom) {
		return ErrInvalidPeriod
	}
	return nil
}
