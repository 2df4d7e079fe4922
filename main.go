package main

import (
	"github.com/formsight/backend/cmd/app"
)

func main() {
	app.Run()
}
