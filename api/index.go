package handler

import (
	"net/http"
	"rantoo/config"
	"rantoo/di"
	"rantoo/shared/logger"
	"sync"
)

var (
	server http.Handler
	once   sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
