// Package customers keeps the buyers and commissioners of bowls.
package customers

import "github.com/JaimeStill/superbowl/pkg/validation"

type Customer struct {
	ID          int64  `json:"id"`
	Version     int    `json:"version"`
	Index       int    `json:"index"`
	Salutation  string `json:"salutation"`
	Graduation  string `json:"graduation"`
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	Phone       string `json:"phone"`
	Fax         string `json:"fax"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
	Comment     string `json:"comment"`
}

// Name is the display name used on bowl pages.
func (c Customer) Name() string {
	if c.Graduation != "" {
		return c.Graduation + " " + c.GivenName + " " + c.FamilyName
	}
	return c.GivenName + " " + c.FamilyName
}

type RegisterCommand struct {
	Index int
	Customer
}

// Form splits the address into user and domain parts; they are joined
// into Email on conversion.
type Form struct {
	Index       string `json:"index" validate:"omitempty,int"`
	Salutation  string `json:"salutation" validate:"required,max=16"`
	Graduation  string `json:"graduation" validate:"max=32"`
	GivenName   string `json:"givenName" validate:"required,max=64"`
	FamilyName  string `json:"familyName" validate:"required,max=64"`
	Phone       string `json:"phone" validate:"max=32"`
	Fax         string `json:"fax" validate:"max=32"`
	Mobile      string `json:"mobile" validate:"max=32"`
	EmailUser   string `json:"emailUser" validate:"required,max=64,excludesall=@ "`
	EmailDomain string `json:"emailDomain" validate:"required,fqdn"`
	Street      string `json:"street" validate:"max=64"`
	HouseNumber string `json:"houseNumber" validate:"max=16"`
	ZipCode     string `json:"zipCode" validate:"max=16"`
	City        string `json:"city" validate:"max=64"`
	CountryCode string `json:"countryCode" validate:"omitempty,len=2,alpha"`
	Country     string `json:"country" validate:"max=64"`
	Comment     string `json:"comment" validate:"max=255"`
}

func (f Form) Email() string {
	return f.EmailUser + "@" + f.EmailDomain
}

func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Index: validation.Int(f.Index),
		Customer: Customer{
			Salutation:  f.Salutation,
			Graduation:  f.Graduation,
			GivenName:   f.GivenName,
			FamilyName:  f.FamilyName,
			Phone:       f.Phone,
			Fax:         f.Fax,
			Mobile:      f.Mobile,
			Email:       f.Email(),
			Street:      f.Street,
			HouseNumber: f.HouseNumber,
			ZipCode:     f.ZipCode,
			City:        f.City,
			CountryCode: f.CountryCode,
			Country:     f.Country,
			Comment:     f.Comment,
		},
	}
}
