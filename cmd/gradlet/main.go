// Package main provides the Gradlet CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Gradlet %s\n", version)
		return
	}

	fmt.Println("Gradlet - Scalar Autodiff Engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/moons for a runnable training demo.")
}
