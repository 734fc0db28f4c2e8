package routes

import (
	"blossom-invoice-backend/config"
	"blossom-invoice-backend/controllers"
	"blossom-invoice-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SetupRouter(cfg *config.Config, invoices *controllers.InvoiceController) *gin.Engine {
	r := gin.Default()

	// The frontend talks to this service from arbitrary origins; the real
	// gate is the internal token, not CORS.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Internal-Token"},
	}))

	r.Use(RequestID())
	r.Use(config.PerformanceLogger())

	r.GET("/", controllers.HealthCheck)

	admin := r.Group("/admin/invoice")
	admin.Use(utils.InternalTokenMiddleware(cfg.InternalAPIToken))
	{
		admin.POST("/send", invoices.SendInvoice)
		admin.POST("/pdf", invoices.GeneratePDF)
	}

	return r
}

// RequestID tags every request with a correlation id, echoed in the
// response and picked up by the performance log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
