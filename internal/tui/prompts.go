// Package tui wraps the interactive prompt widgets used by cmakemin and
// the detection logic that decides whether prompting is appropriate.
package tui

import "github.com/charmbracelet/huh"

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var value bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return value, nil
}

// Input shows a single-line text input prompt, pre-filled with the
// current value.
func Input(title, description string, value *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(value),
		),
	)
	return form.Run()
}
