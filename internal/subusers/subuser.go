// Package subusers holds the accounts allowed to sign in and the setup
// routine that creates the first one.
package subusers

import "time"

type Subuser struct {
	ID         int64      `json:"id"`
	Version    int        `json:"version"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	Email      string     `json:"email"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	LastLogout *time.Time `json:"lastLogout,omitempty"`
	LoginCount int        `json:"loginCount"`
	Locked     bool       `json:"locked"`
}

// Account describes the subuser created by Setup.
type Account struct {
	UserID   string
	UserName string
	Email    string
	Password string
}
