package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"items-api/controllers"
	"items-api/middleware"
)

// SetupRoutes builds the router for the items API. The search route is
// registered before the id routes; the id pattern only matches digits.
func SetupRoutes(c *controllers.ItemController, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/items/", c.List).Methods("GET")
	r.HandleFunc("/api/items/search/", c.Search).Methods("GET")
	r.HandleFunc("/api/items/create/", c.Create).Methods("POST")
	r.HandleFunc("/api/items/{id:[0-9]+}/", c.Detail).Methods("GET")
	r.HandleFunc("/api/items/{id:[0-9]+}/update/", c.Update).Methods("PUT")
	r.HandleFunc("/api/items/{id:[0-9]+}/delete/", c.Delete).Methods("DELETE")

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	return r
}
