package main

import "github.com/tatianab/deadly-dice/internal/cli"

// Allows `go run .` from the repository root.
func main() {
	cli.Execute()
}
