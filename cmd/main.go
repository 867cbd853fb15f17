package main

import (
	"os"

	"vpsworth/internal/app"
)

// @title vpsworth API
// @version 1.0
// @description Remaining value of prepaid VPS plans, badges, avatar rings, QR codes and exchange rates.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
