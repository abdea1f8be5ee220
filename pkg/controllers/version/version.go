// Package version reports which build of the kakeibo backend is running.
package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/pkg/httputil"
)

type Response struct {
	Data Info `json:"data"`
}

// Info describes the running build.
type Info struct {
	Version   string `json:"version" example:"1.4.0"`     // Release of the backend, 0.0.0 for local builds
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go toolchain the binary was built with
}

// RegisterRoutes registers the version endpoint. The version is passed in
// by the router, which receives it at build time.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.OPTIONS("", Options)
	r.GET("", Get(version))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release of the backend and the Go version it was built with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	info := Info{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: info})
	}
}
