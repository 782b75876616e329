package main

import (
	"os"

	"github.com/olatundun-care/sitecms/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
