package handlers

import (
	"github.com/SscSPs/docflow_backend/cmd/docs"
	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
	"github.com/SscSPs/docflow_backend/internal/middleware"
	"github.com/SscSPs/docflow_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const apiBasePath = "/api/v1"

// RegisterRoutes mounts the public health endpoints, the authenticated document API and,
// outside production, the swagger UI.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, container *portssvc.ServiceContainer) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)

	api := r.Group(apiBasePath, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterDocumentRoutes(api, container.Document)
	RegisterReferenceRoutes(api, container.Reference)

	if !cfg.IsProduction {
		mountSwagger(r)
	}
}

func mountSwagger(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = apiBasePath
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
