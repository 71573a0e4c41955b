// Package prompt asks for confirmation before destructive commands.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gluster/glusterxattr/internal/logger"
	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// ErrNotInteractive is returned instead of prompting when stdin is not a
// terminal.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal; use --force")

// interactive reports whether stdin can answer a prompt. Replaced in tests.
var interactive = func() bool {
	return logger.IsTerminal(os.Stdin.Fd())
}

// IsAborted returns true if err means the user aborted a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

// Confirm prompts the user for yes/no confirmation.
// Returns ErrAborted if the user presses Ctrl+C.
func Confirm(label string, defaultYes bool) (bool, error) {
	if !interactive() {
		return false, ErrNotInteractive
	}

	defaultStr := "y/N"
	if defaultYes {
		defaultStr = "Y/n"
	}

	p := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, defaultStr),
		IsConfirm: true,
	}

	result, err := p.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return false, ErrAborted
		}
		// promptui returns ErrAbort for "n"
		if err == promptui.ErrAbort {
			return false, nil
		}
		if result == "" {
			return defaultYes, nil
		}
		return false, err
	}

	result = strings.ToLower(result)
	return result == "y" || result == "yes", nil
}

// ConfirmWithForce returns true immediately if force is true,
// otherwise prompts for confirmation.
func ConfirmWithForce(label string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	return Confirm(label, false)
}
