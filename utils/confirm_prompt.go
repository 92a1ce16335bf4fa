package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ncmink/biebie-cli/constants/lipgloss"
)

// ConfirmPrompt asks the user a yes/no question and reads the answer.
// Anything but "y" or "yes" counts as no.
func ConfirmPrompt(message string, reader *bufio.Reader) (bool, error) {

	// Beautifully styled prompt message
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("%s (y/N): ", message)))

	// Read user input
	userInput, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf(lipgloss.Red.Render("🚫 Error reading input: "))
	}

	answer := strings.ToLower(strings.TrimSpace(userInput))
	return answer == "y" || answer == "yes", nil
}
