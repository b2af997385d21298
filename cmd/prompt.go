package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// CredentialReader supplies the interactive secrets. The terminal
// implementation prompts the user; tests supply fixed values without any
// terminal interaction.
type CredentialReader interface {
	// Password reads a secret without echoing it back.
	Password(prompt string) (string, error)
	// OTP reads a one-time passcode with normal echo.
	OTP(prompt string) (string, error)
}

// TerminalCredentials reads credentials from the controlling terminal,
// writing prompts to stderr so stdout stays machine-readable.
type TerminalCredentials struct{}

func (TerminalCredentials) Password(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (TerminalCredentials) OTP(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
