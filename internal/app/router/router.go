// Package router assembles the gin engine and the route table.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vuttr_backend/internal/app/api"
	authhandler "vuttr_backend/internal/feature/auth/transport/handler"
	toolhandler "vuttr_backend/internal/feature/tools/transport/handler"
	"vuttr_backend/internal/platform/http/handler"
	"vuttr_backend/internal/platform/token"
)

// NewRouter wires all routes. jwtSecret is the HMAC key the bearer-token
// middleware verifies against; tool routes require a valid token, user
// routes do not.
func NewRouter(authHandler *authhandler.AuthHandler, tools *toolhandler.ToolHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Open routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "apivuttr online"})
	})
	r.GET("/healthz", handler.Health)
	r.POST("/users/signup", authHandler.Signup)
	r.POST("/users/login", authHandler.Login)
	r.GET("/users/all", authHandler.ListUsers)

	// Token-protected routes
	auth := r.Group("/")
	auth.Use(token.AuthRequired(jwtSecret))
	{
		auth.POST("/tools", tools.Add)
		auth.GET("/tools", tools.ListByTag)
		auth.GET("/tools/all/:userId", tools.ListOwned)
		auth.DELETE("/tools/:id", tools.Remove)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Could not find this route."})
	})

	return r
}
