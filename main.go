// main.go
//
// Entry point for the sachgames server and CLI.
// Loads .env (development) and hands over to the cobra command tree in cmd.go.

package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
