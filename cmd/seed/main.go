package main

import (
	"log"

	tool "github.com/jameszjgao/vouchap-crm/internal/tools/seed"
)

func main() {
	if err := tool.NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
