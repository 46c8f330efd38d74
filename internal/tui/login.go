package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Credentials holds the email/password pair collected by the login form
type Credentials struct {
	Email    string
	Password string
}

// RunLoginForm collects admin credentials interactively
func RunLoginForm() (Credentials, error) {
	var creds Credentials

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("admin@vedicvision.com").
			Value(&creds.Email).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("email is required")
				}
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email address")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("login prompt failed: %w", err)
	}
	return creds, nil
}

// ConfirmDestructive displays a yes/no confirmation for a destructive
// operation, defaulting to no
func ConfirmDestructive(message string) (bool, error) {
	var confirmed bool

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}
