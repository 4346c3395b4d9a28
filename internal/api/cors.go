package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func setupCorsOptions(origins []string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions})
	allowed := handlers.AllowedOrigins(origins)
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	options := []handlers.CORSOption{methods, allowed, headers}
	return options
}
