package main

import (
	"github.com/docketwatch/docketwatch/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	cli.Execute()
}
