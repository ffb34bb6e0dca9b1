package main

import (
	"go-stream-api/app"

	_ "go-stream-api/docs"
)

// @title           Go-Stream API
// @version         1.0
// @description     User-account service for a video platform: registration, dual-token sessions, channels and watch history.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
