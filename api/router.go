package api

import (
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/i"
	service_i "github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and the controllers mounted on it.
type Router struct {
	addr        string
	baseURL     string
	ginMode     string
	controllers []i.Controller
	logger      service_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // Gin mode (release, debug, test); empty keeps gin's current mode
	Controllers []i.Controller
	Logger      service_i.Logger // Optional; reports server start and shutdown
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		ginMode:     config.GinMode,
		controllers: config.Controllers,
		logger:      config.Logger,
	}
}

// Handler builds the gin engine with every controller registered under
// <baseURL>/v1.
func (r *Router) Handler() http.Handler {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	router := gin.Default()

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(publicRoutes)
		}
	}

	return router
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	handler := r.Handler()

	if r.logger != nil {
		r.logger.Info(fmt.Sprintf("Serving HTTP on %s%s/v1", r.addr, r.baseURL))
	}
	err := http.ListenAndServe(r.addr, handler)
	if r.logger != nil {
		r.logger.Error(fmt.Sprintf("HTTP server on %s stopped: %v", r.addr, err))
	}
	return err
}
