package main

import (
	"github.com/flatline-dot/skytrack-marketplace/internal/app"
	"github.com/flatline-dot/skytrack-marketplace/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
