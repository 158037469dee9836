package main

import "github.com/tatianab/deadly-dice/internal/cli"

func main() {
	cli.Execute()
}
