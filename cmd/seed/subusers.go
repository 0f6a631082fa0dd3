package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/superbowl/internal/subusers"
)

func init() {
	registerSeeder(&SubuserSeeder{})
}

// SubuserSeeder creates the configured account unless its user id exists.
type SubuserSeeder struct {
	account subusers.Account
}

func (s *SubuserSeeder) Name() string { return "subusers" }

func (s *SubuserSeeder) Description() string {
	return "Seeds the initial subuser from the setup configuration"
}

// SetAccount configures the account to create.
func (s *SubuserSeeder) SetAccount(a subusers.Account) {
	s.account = a
}

func (s *SubuserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	if s.account.UserID == "" {
		return fmt.Errorf("setup user id required")
	}

	password := s.account.Password
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO subusers
			(version, user_id, password_hash, user_name, email, last_login, login_count, locked)
		VALUES (0, $1, $2, $3, $4, $5, 1, false)
		ON CONFLICT (user_id) DO NOTHING`,
		s.account.UserID, string(hash), s.account.UserName, s.account.Email,
		time.Now().Add(-24*time.Hour),
	)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n > 0 && generated {
		fmt.Fprintf(os.Stderr, "subuser %s created with password %s\n", s.account.UserID, password)
	}
	return nil
}
