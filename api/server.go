package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/junianwoo/fyd-sub001/consensus"
	"github.com/junianwoo/fyd-sub001/external/geoinfo"
	"github.com/junianwoo/fyd-sub001/logmodule"
	"github.com/junianwoo/fyd-sub001/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.FYDCore
	mongoStore store.MongoStore

	// Consensus engine for community reports
	consensus *consensus.Engine

	// Alert engine task enqueuer
	alertTrigger consensus.AlertTrigger

	// External services
	geoClient geoinfo.GeoInfo

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	core store.FYDCore,
	mongoStore store.MongoStore,
	geoClient geoinfo.GeoInfo,
	alertTrigger consensus.AlertTrigger,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         core,
		mongoStore:    mongoStore,
		consensus:     consensus.NewEngine(mongoStore, alertTrigger),
		alertTrigger:  alertTrigger,
		geoClient:     geoClient,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/community-reports", s.submitCommunityReport)

	listingRoute := apiRoute.Group("/listings")
	{
		listingRoute.GET("", s.listingSearch)
		listingRoute.GET("/:listingID", s.listingDetail)
	}

	apiRoute.POST("/accounts", s.accountRegister)
	apiRoute.POST("/auth", s.requestJWT)

	// api routes below apply the following middlewares
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	subscriptionRoute := apiRoute.Group("/subscriptions")
	{
		subscriptionRoute.GET("", s.subscriptionList)
		subscriptionRoute.POST("", s.subscriptionCreate)
		subscriptionRoute.PATCH("/:subscriptionID", s.subscriptionUpdate)
		subscriptionRoute.DELETE("/:subscriptionID", s.subscriptionDelete)
	}

	assistanceRoute := apiRoute.Group("/assisted-access")
	{
		assistanceRoute.POST("", s.assistedAccessApply)
		assistanceRoute.GET("", s.assistedAccessDetail)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/run-alert-engine", s.adminRunAlertEngine)
		secretRoute.POST("/assisted-access/:applicationID/review", s.adminReviewAssistedAccess)
		secretRoute.GET("/service-metrics", s.adminServiceMetrics)
		secretRoute.GET("/pending-updates", s.adminListPendingUpdates)
		secretRoute.GET("/community-reports", s.adminListCommunityReports)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both dbs
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
