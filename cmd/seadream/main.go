// seadream is a creative prompt playground for image generation models.
package main

import (
	"fmt"
	"os"

	"github.com/chromasynth/go-seadream/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
