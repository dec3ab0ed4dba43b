package router

import (
	"admin-panel-server/internal/frontend"

	"github.com/gin-gonic/gin"
)

func registerFrontendRoutes(r *gin.Engine, f *frontend.Server) {
	if f.Enabled() {
		r.GET("/assets/*filepath", f.ServeAsset)
		r.HEAD("/assets/*filepath", f.ServeAsset)
	}
	r.NoRoute(f.NoRoute)
}
