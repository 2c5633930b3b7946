package main

import (
	"log"
	"os"

	"github.com/algosender/algosender/cmd/algosender-cli/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		log.Fatalf("failed to run algosender-cli: %v", err)
	}

	os.Exit(0)
}
