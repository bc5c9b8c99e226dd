package main

import (
	"rantoo/config"
	"rantoo/di"
	"rantoo/shared/logger"
)

// @title TimePuff Epoch Converter API
// @version 1.0
// @description Converts between Unix epoch seconds and human readable datetimes, optionally in a timezone.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	http := di.InitializeService()
	http.Serve()
}
