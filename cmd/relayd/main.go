package main

import (
	"log"

	"github.com/foodsearch/relay/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
