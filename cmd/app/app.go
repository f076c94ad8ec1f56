package main

import (
	"github.com/vinylcrate/go-backend/internal/app"
)

func main() {
	app.Run()
}
