// Package statuses manages the workflow states a bowl passes through, such
// as being turned, drying or sold. The list is read on nearly every bowl
// page and is cached.
package statuses

import "github.com/JaimeStill/superbowl/pkg/validation"

// Status is one bowl workflow state.
type Status struct {
	ID      int64  `json:"id"`
	Version int    `json:"version"`
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Text    string `json:"text"`
	Comment string `json:"comment"`
}

// RegisterCommand carries a validated new status.
type RegisterCommand struct {
	Index   int
	Code    string
	Text    string
	Comment string
}

// Form is the submitted registration form.
type Form struct {
	Index   string `json:"index" validate:"required,int"`
	Code    string `json:"code" validate:"required,max=8"`
	Text    string `json:"text" validate:"required,max=64"`
	Comment string `json:"comment" validate:"required,max=255"`
}

// Command converts a validated form.
func (f Form) Command() RegisterCommand {
	return RegisterCommand{
		Index:   validation.Int(f.Index),
		Code:    f.Code,
		Text:    f.Text,
		Comment: f.Comment,
	}
}
