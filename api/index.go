package handler

import (
	"net/http"
	"petcare/config"
	"petcare/di"
	"petcare/shared/logger"
	transport "petcare/transport/http"
	"sync"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler is the serverless entry point. The application graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
