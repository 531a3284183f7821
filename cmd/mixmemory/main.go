package main

import (
	"github.com/joho/godotenv"

	"github.com/cesargomez89/mixmemory/internal/cli"
)

func main() {
	// A local .env may hold MIXMEMORY_* settings; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
