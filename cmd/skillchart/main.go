package main

import (
	"log"

	"github.com/andywolf/skillchart/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cli.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
