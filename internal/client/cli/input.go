package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// GetSimpleText prints a prompt and reads one trimmed line of input.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)

	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// GetPassword reads a password from the terminal without echoing it.
func GetPassword() ([]byte, error) {
	fmt.Println("Enter password")
	return readPassword()
}
