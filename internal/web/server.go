// internal/web/server.go
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tylertidwell91-git/ouachitawater/internal/config"
	"github.com/tylertidwell91-git/ouachitawater/internal/submission"
)

// Server owns the HTTP surface: the JSON API plus the static form pages.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	svc    *submission.Service
}

func NewServer(cfg *config.Config, svc *submission.Service) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), corsMiddleware())

	s := &Server{router: router, cfg: cfg, svc: svc}

	api := router.Group("/api")
	api.GET("/config", s.handleConfig)
	api.POST("/create-payment-intent", s.handleCreatePaymentIntent)
	api.POST("/submit-bill", s.handleSubmitBill)
	api.POST("/submit-new-customer", s.handleSubmitNewCustomer)

	// The forms, scripts, and styles live at the site root, so the file
	// server takes everything the API does not claim.
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found."})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	return s
}

// Handler exposes the router for the http.Server in cmd.
func (s *Server) Handler() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
