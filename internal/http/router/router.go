package router

import (
	"net/http"

	apphttp "property_brochure_backend/internal/http"
	"property_brochure_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// New builds the gin engine and mounts every module on it.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.CORS(app.Config.GetCORSOrigins(), ownedCORSPaths(app.Modules)...))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx := &apphttp.RouterContext{
		Engine:             engine,
		V1:                 engine.Group("/api/v1"),
		InquiryRateLimiter: httpkit.NewInquiryRateLimiter(app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

func ownedCORSPaths(modules []apphttp.Module) []string {
	var paths []string
	for _, module := range modules {
		if owner, ok := module.(apphttp.CORSOwner); ok {
			paths = append(paths, owner.CORSPaths()...)
		}
	}
	return paths
}
