// mockserver runs a local mock of the Anthropic Messages endpoint.
package main

import (
	"flag"
	"log"

	"github.com/jordanvaneetveldt/claudewire/internal/logger"
	"github.com/jordanvaneetveldt/claudewire/internal/mockapi"
)

func main() {
	port := flag.String("port", "8001", "Port to run the server on")
	flag.Parse()

	logger.InitLogger(logger.INFO, "mockserver")

	r := mockapi.NewRouter()
	if err := r.Run(":" + *port); err != nil {
		log.Fatal(err)
	}
}
