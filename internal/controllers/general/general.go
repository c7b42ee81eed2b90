// Package general serves the endpoints outside of the versioned API:
// the API root, the health check and the version.
package general

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/httputil"
	"github.com/monthly-expense/backend/internal/models"
)

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health of the backend and its database
	Version string `json:"version" example:"https://example.com/api/version"`      // Version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // The expense API
}

type RootResponse struct {
	Links Links `json:"links"`
}

type Health struct {
	Database string `json:"database" example:"sqlite"` // Dialect of the database
	Latency  string `json:"latency" example:"1.2ms"`   // Duration of the database ping
}

type HealthResponse struct {
	// Health information, only set if the backend is healthy
	Data *Health `json:"data"`

	// The error, if any occurred
	Error *string `json:"error" example:"an error occurred on the server during your request"`
}

type Version struct {
	Version string `json:"version" example:"1.1.0"` // Version of the backend
	Go      string `json:"go" example:"go1.25.5"`   // Go version the backend was built with
}

type VersionResponse struct {
	Data Version `json:"data"`
}

// RegisterRoutes registers the general endpoints. version is reported
// by the version endpoint.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.OPTIONS("", Options)
	r.GET("", GetRoot)

	r.OPTIONS("/healthz", Options)
	r.GET("/healthz", GetHealth)

	r.OPTIONS("/version", Options)
	r.GET("/version", GetVersion(version))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
// @Router			/healthz [options]
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Get health
// @Description	Pings the database. Responds with 503 if it cannot be reached.
// @Tags			General
// @Produce		json
// @Success		200	{object}	HealthResponse
// @Failure		503	{object}	HealthResponse
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	unhealthy := func(err error) {
		e := models.Translate(err).Error()
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Error: &e})
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		unhealthy(err)
		return
	}

	start := time.Now()
	err = sqlDB.PingContext(c)
	if err != nil {
		unhealthy(err)
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Data: &Health{
		Database: models.DB.Dialector.Name(),
		Latency:  time.Since(start).String(),
	}})
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(version string) gin.HandlerFunc {
	response := VersionResponse{Data: Version{
		Version: version,
		Go:      runtime.Version(),
	}}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
