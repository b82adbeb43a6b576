package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alamin4D/battle-server-website/internal/cache"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/services"
	"github.com/Alamin4D/battle-server-website/internal/utils"
)

const serviceName = "battle-server"

// RouterConfig holds per-route limits
type RouterConfig struct {
	RateLimitPerMinute int
}

type HandlerManager struct {
	authHandler        *AuthHandler
	paymentHandler     *PaymentHandler
	userHandler        *UserHandler
	scholarshipHandler *ScholarshipHandler
	applicationHandler *SubmissionHandler
	reviewHandler      *SubmissionHandler
	exportHandler      *ExportHandler
	authMiddleware     *AuthMiddleware

	serviceManager services.ServiceManager
	limiter        *cache.FixedWindowLimiter
	config         RouterConfig
	logger         utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	limiter *cache.FixedWindowLimiter,
	logger utils.Logger,
	config RouterConfig,
) *HandlerManager {
	if limiter == nil {
		limiter = cache.NewFixedWindowLimiter(nil)
	}

	return &HandlerManager{
		authHandler:        NewAuthHandler(serviceManager.Token(), logger),
		paymentHandler:     NewPaymentHandler(serviceManager.Payment(), logger),
		userHandler:        NewUserHandler(serviceManager.User(), logger),
		scholarshipHandler: NewScholarshipHandler(serviceManager.Scholarship(), logger),
		applicationHandler: NewSubmissionHandler(serviceManager.Application(), logger),
		reviewHandler:      NewSubmissionHandler(serviceManager.Review(), logger),
		exportHandler:      NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:     NewAuthMiddleware(serviceManager.Token(), serviceManager.User(), logger),
		serviceManager:     serviceManager,
		limiter:            limiter,
		config:             config,
		logger:             logger,
	}
}

func (hm *HandlerManager) rateLimit(route string) gin.HandlerFunc {
	return RateLimitMiddleware(hm.limiter, route, hm.config.RateLimitPerMinute, time.Minute, hm.logger)
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	auth := hm.authMiddleware.AuthGate()
	admin := hm.authMiddleware.AdminGate()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "My Battle server is running")
	})
	router.GET("/health", hm.health)
	router.GET("/metrics", MetricsHandler())

	// Auth and payments
	router.POST("/jwt", hm.rateLimit("jwt"), hm.authHandler.IssueToken)
	router.POST("/create-payment-intent", hm.rateLimit("payment"), hm.paymentHandler.CreatePaymentIntent)

	// Users
	router.PUT("/user", hm.userHandler.UpsertUser)
	router.GET("/user/:email", hm.userHandler.GetUser)
	router.GET("/users", auth, admin, hm.userHandler.ListUsers)
	router.PATCH("/users/update/:email", hm.userHandler.UpdateUser)
	router.DELETE("/users/:id", hm.userHandler.DeleteUser)

	// Scholarships
	router.GET("/scholarships", hm.scholarshipHandler.ListAll)
	router.GET("/scholarships/export", auth, admin, hm.exportHandler.ExportScholarships)
	router.POST("/add-scholarship", hm.scholarshipHandler.Create)
	router.PUT("/scholarship/update/:id", auth, hm.scholarshipHandler.Update)
	router.DELETE("/scholarship/:id", auth, admin, hm.scholarshipHandler.Delete)
	router.GET("/scholarship", hm.scholarshipHandler.Search)
	router.GET("/scholarship/:id", hm.scholarshipHandler.Get)
	router.GET("/jobs-count", hm.scholarshipHandler.Count)

	// Applications
	router.POST("/applied-scholarship", auth, hm.applicationHandler.Create)
	router.GET("/all-applied/:email", hm.applicationHandler.ListByEmail)
	router.GET("/applied", hm.applicationHandler.List)
	router.GET("/applied/export", auth, admin, hm.exportHandler.ExportApplications)
	router.DELETE("/all-applied/:id", hm.applicationHandler.Delete)

	// Reviews
	router.POST("/add-review", auth, hm.reviewHandler.Create)
	router.PUT("/review/update/:id", auth, hm.reviewHandler.Update)
	router.GET("/reviews", hm.reviewHandler.List)
	router.GET("/all-review/:email", hm.reviewHandler.ListByEmail)
	router.DELETE("/all-review/:id", hm.reviewHandler.Delete)
}

func (hm *HandlerManager) health(c *gin.Context) {
	status := http.StatusOK
	resp := models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Checks:  map[string]string{},
	}

	for name, err := range hm.serviceManager.HealthCheck(c.Request.Context()) {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, resp)
}
