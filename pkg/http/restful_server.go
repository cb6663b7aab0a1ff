package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/dashboard"
	"aquaview.xyz/water-quality-service/pkg/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type RestfulServer struct {
	Server           *gin.Engine
	Dash             *dashboard.Dashboard
	RateLimiterStore *dashboard.ClientLimiterStore
}

func (rs *RestfulServer) GetLimiter(client string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(client)
	}
}

func (rs *RestfulServer) CheckClientLimiter(client string) bool {
	limiter := rs.GetLimiter(client)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(client string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(client, rate.Limit(clientRate), clientBurst)
}

// RequestIDMiddleware tags every request with an id, either the one the
// client sent or a fresh one, and echoes it back in the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(common.LoggerFieldRequestID, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func pageTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"icon": iconGlyph,
		"inc":  func(i int) int { return i + 1 },
	}).ParseFS(templatesFS, "templates/*.tmpl"))
}

// iconGlyph resolves the symbolic icon names carried by parameter
// descriptors. Only the rendering layer knows actual glyphs.
func iconGlyph(icon models.IconRef) string {
	switch icon {
	case models.IconThermometer:
		return "🌡️"
	case models.IconFlask:
		return "🧪"
	case models.IconDroplet:
		return "💧"
	case models.IconScale:
		return "⚖️"
	case models.IconBubbles:
		return "🫧"
	case models.IconShell:
		return "🐚"
	case models.IconBeaker:
		return "⚗️"
	case models.IconWarning:
		return "⚠️"
	default:
		return "•"
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.SetHTMLTemplate(pageTemplates())
	rs.Server.Use(RequestIDMiddleware())

	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.GET("/", rs.GetOverviewPage)
	rs.Server.GET("/readings", rs.GetReadingsPage)

	graphs := rs.Server.Group("/graphs")
	{
		graphs.GET("", rs.GetGraphsPage)
		graphs.POST("/toggle", rs.PostGraphsToggle)
	}

	api := rs.Server.Group("/api")
	{
		api.GET("/overview", rs.GetAPIOverview)
		api.GET("/parameters", rs.GetAPIParameters)
		api.GET("/graphs/chart", rs.GetAPIChart)
		api.POST("/graphs/toggle", rs.PostAPIToggle)
		api.GET("/readings/:index", rs.GetAPIReading)
		api.POST("/limiter", rs.PostLimiter)
	}
}
