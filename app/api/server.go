package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakelandequipment/site/app/cfg"
	"github.com/lakelandequipment/site/app/database"
	"github.com/lakelandequipment/site/app/wxr"
)

func NewHandler(posts database.PostRepository, catalog database.CatalogRepository,
	sales database.SalesRepository, siteRepo database.SiteRepository) *Handler {
	return &Handler{
		posts:     posts,
		catalog:   catalog,
		sales:     sales,
		site:      siteRepo,
		importer:  wxr.NewImporter(posts),
		generator: NewGenerator(),
	}
}

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler, apiAccessKey string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, apiAccessKey)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, apiAccessKey string) {
	// Public endpoints
	r.GET("/health", handler.GetHealth)
	r.GET("/categories", handler.ListCategories)
	r.GET("/categories/:slug", handler.GetCategory)
	r.GET("/machines", handler.ListMachines)
	r.GET("/machines/:slug", handler.GetMachine)
	r.GET("/blog", handler.ListPosts)
	r.GET("/blog/:slug", handler.GetPost)
	r.GET("/feed.xml", handler.GetBlogFeed)
	r.GET("/salespeople", handler.ListSalespeople)
	r.GET("/salespeople/:slug", handler.GetSalesperson)
	r.GET("/counties", handler.ListCounties)
	r.GET("/testimonials", handler.ListTestimonials)
	r.GET("/navigation", handler.GetNavigation)

	// Admin endpoints (conditionally enabled with authentication)
	if apiAccessKey != "" {
		admin := r.Group("/api/admin")
		admin.Use(authMiddleware(apiAccessKey))
		{
			admin.POST("/import/wordpress", handler.ImportWordPress)

			admin.POST("/posts", handler.CreatePost)
			admin.PUT("/posts/:id", handler.UpdatePost)
			admin.DELETE("/posts/:id", handler.DeletePost)

			admin.POST("/categories", handler.CreateCategory)
			admin.PUT("/categories/:id", handler.UpdateCategory)
			admin.DELETE("/categories/:id", handler.DeleteCategory)

			admin.POST("/machines", handler.CreateMachine)
			admin.PUT("/machines/:id", handler.UpdateMachine)
			admin.DELETE("/machines/:id", handler.DeleteMachine)

			admin.POST("/salespeople", handler.CreateSalesperson)
			admin.DELETE("/salespeople/:id", handler.DeleteSalesperson)
			admin.PUT("/counties/:fips", handler.AssignCounty)
			admin.POST("/counties/reassign", handler.ReassignCounties)

			admin.POST("/testimonials", handler.CreateTestimonial)
			admin.DELETE("/testimonials/:id", handler.DeleteTestimonial)

			admin.GET("/navigation", handler.AdminListNavigation)
			admin.POST("/navigation", handler.CreateNavigationItem)
			admin.PUT("/navigation/:id", handler.UpdateNavigationItem)
			admin.DELETE("/navigation/:id", handler.DeleteNavigationItem)
			admin.POST("/navigation/reorder", handler.ReorderNavigation)

			admin.GET("/settings", handler.GetSettings)
			admin.PUT("/settings", handler.UpdateSettings)
		}
		slog.Info("Admin API endpoints enabled with authentication")
	} else {
		slog.Info("Admin API endpoints disabled (API_ACCESS_KEY not set)")
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     cfg.Get().SiteName,
			"version":     cfg.Get().Version,
			"description": "Content API for the equipment catalog, blog, and sales territory directory",
			"endpoints": map[string]string{
				"health":       "/health",
				"categories":   "/categories",
				"machines":     "/machines",
				"blog":         "/blog",
				"blog_feed":    "/feed.xml",
				"salespeople":  "/salespeople",
				"counties":     "/counties?state=<abbr>",
				"testimonials": "/testimonials",
				"navigation":   "/navigation",
			},
			"admin_api": map[string]interface{}{
				"enabled": apiAccessKey != "",
				"header":  "X-API-Key",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authMiddleware guards the admin endpoints with a shared API key
func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		providedKey := c.GetHeader("X-API-Key")

		if providedKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				providedKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if providedKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "API key required",
				"message": "Provide API key in X-API-Key header or Authorization: Bearer <key>",
			})
			c.Abort()
			return
		}

		if providedKey != apiAccessKey {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid API key",
				"message": "The provided API key is not valid",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
