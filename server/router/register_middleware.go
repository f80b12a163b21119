package router

import (
	config "github.com/Ehudaviv/Ofra-CV-Site/configs"
	"github.com/Ehudaviv/Ofra-CV-Site/server/middleware"
	"github.com/Ehudaviv/Ofra-CV-Site/server/middleware/set_request_context"
)

func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)                // canonical paths without trailing slashes
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all pages need this

	if config.Global.Limiter.Enabled {
		middleware.InitRateLimit()

		router.Use(middleware.RateLimitThumbnails)
	}
}
