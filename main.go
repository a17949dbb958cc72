package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"partyscout/config"
	"partyscout/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	container := di.NewContainer(config.Env())

	fmt.Println("starting server!")
	container.PartyScoutHttpServer.Start()
	fmt.Println("server stopped!")
}
