package utils

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
)

// RenderAndPrintJSON prints the JSON document with syntax highlighting.
func RenderAndPrintJSON(content string, theme string) error {

	if err := quick.Highlight(os.Stdout, content, "json", "terminal256", theme); err != nil {
		return err
	}
	fmt.Println()

	return nil
}
