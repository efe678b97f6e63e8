package main

import "github.com/GriffinCanCode/unitconv/internal/cli"

func main() {
	cli.Execute()
}
