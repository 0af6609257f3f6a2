package api

import (
	intconfig "ats/internal/config"
	h "ats/internal/http/handlers"
	"ats/internal/http/middleware"
	"ats/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route on a fresh engine. reg collects the HTTP metrics
// and is served on /metrics.
func NewRouter(env intconfig.Env, handler *h.Handler, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		h.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.NewMetrics(reg).Handler(),
		h.ErrorHandler(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(h.NoRoute)

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	authn := r.Group("/authentication")
	authn.POST("/users", handler.Register)
	authn.POST("/sessions", handler.Login)
	authn.DELETE("/sessions", handler.Logout)
	authn.GET("/sessions/token", handler.Refresh)

	api := r.Group("", middleware.RequireSession(handler.Sessions()))
	{
		users := api.Group("/users")
		users.GET("", handler.ListUsers)
		users.GET("/current", handler.CurrentUser)
		users.GET("/:slug", handler.GetUser)

		clients := api.Group("/clients")
		clients.GET("", handler.ListClients)
		clients.GET("/:slug", handler.GetClient)
		clients.POST("", handler.CreateClient)

		offers := api.Group("/offers")
		offers.GET("", handler.ListOffers)
		offers.GET("/:slug", handler.GetOffer)
		offers.GET("/:slug/sheet", handler.GetOfferSheet)
		offers.POST("", handler.CreateOffer)

		candidates := api.Group("/candidates")
		candidates.GET("", handler.ListCandidates)
		candidates.GET("/:slug", handler.GetCandidate)
		candidates.POST("", handler.CreateCandidate)

		api.GET("/interviews", handler.ListInterviews)

		processes := api.Group("/processes")
		processes.GET("", handler.ListProcesses)
		processes.GET("/:id", handler.GetProcess)
		processes.PUT("/:id/status", handler.UpdateProcessStatus)

		analytics := api.Group("/analytics")
		analytics.GET("/candidate-acquisition-over-time", handler.CandidateAcquisition)
		analytics.GET("/client-acquisition-over-time", handler.ClientAcquisition)
	}

	return r
}
