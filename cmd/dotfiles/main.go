package main

import (
	"fmt"
	"os"

	"github.com/ericsmacedo/dotfiles/pkg/ui/styles"
)

func main() {
	if err := Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
