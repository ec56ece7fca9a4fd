package main

import (
	"os"

	"github.com/barcode-maker/barcode-maker/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
