package routes

import (
	"fmt"
	"net/http"
	"time"

	_ "policy_request_service/docs" // swagger docs
	"policy_request_service/internal/adapter/http/handlers"
	"policy_request_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// NewRouter builds the gin engine with every public route under /v1.
func NewRouter(policyRequestHandler *handlers.PolicyRequestHandler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger.Named("http"))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	getRoutes(router, policyRequestHandler)
	return router
}

// NewServer wraps the router in an http.Server listening on port.
func NewServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}

func getRoutes(router *gin.Engine, policyRequestHandler *handlers.PolicyRequestHandler) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPolicyRequestRoutes(v1, policyRequestHandler)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[policy][http] recovered from panic",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("[policy][http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
