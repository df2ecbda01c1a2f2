package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lexasta/internal/config"
	"lexasta/internal/handler"
	"lexasta/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *slog.Logger,
	batchH *handler.BatchHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxFileSizeMB << 20

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	batches := v1.Group("/batches")
	batches.POST("", batchH.Create)
	batches.GET("/:id", batchH.Get)
	batches.DELETE("/:id", batchH.Delete)
	batches.POST("/:id/files", batchH.AddFiles)
	batches.DELETE("/:id/files/:fileId", batchH.RemoveFile)
	batches.POST("/:id/reset", batchH.Reset)
	batches.POST("/:id/analyze", middleware.ModelCredential(cfg.Parser.PrimaryConfig().Provider), batchH.Analyze)

	// Reports
	batches.GET("/:id/report", reportH.Download)
	batches.POST("/:id/report/archive", reportH.Archive)

	return r
}
