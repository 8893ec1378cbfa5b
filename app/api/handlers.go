package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakelandequipment/site/app/cfg"
)

const defaultPostLimit = 50

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.Get().Version,
	}

	if postCount, err := h.posts.GetPostCount(); err == nil {
		health["posts"] = postCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		slog.Error("Database error", "operation", "get_categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
}

func (h *Handler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.catalog.GetCategoryBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_category", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	machines, err := h.catalog.GetMachines(category.ID, false)
	if err != nil {
		slog.Error("Database error", "operation", "get_category_machines", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "machines": machines})
}

func (h *Handler) ListMachines(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	machines, err := h.catalog.GetMachines(c.Query("category_id"), featuredOnly)
	if err != nil {
		slog.Error("Database error", "operation", "get_machines", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"machines": machines, "total": len(machines)})
}

func (h *Handler) GetMachine(c *gin.Context) {
	slug := c.Param("slug")

	machine, err := h.catalog.GetMachineBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_machine", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if machine == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Machine not found"})
		return
	}

	c.JSON(http.StatusOK, machine)
}

func (h *Handler) ListPosts(c *gin.Context) {
	limit := defaultPostLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	posts, err := h.posts.GetPublishedPosts(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

func (h *Handler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.posts.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if post == nil || !post.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) GetBlogFeed(c *gin.Context) {
	posts, err := h.posts.GetPublishedPosts(defaultPostLimit)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed_posts", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	rss := h.generator.Run(posts)

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

func (h *Handler) ListSalespeople(c *gin.Context) {
	salespeople, err := h.sales.GetSalespeople()
	if err != nil {
		slog.Error("Database error", "operation", "get_salespeople", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"salespeople": salespeople, "total": len(salespeople)})
}

func (h *Handler) GetSalesperson(c *gin.Context) {
	slug := c.Param("slug")

	salesperson, err := h.sales.GetSalespersonBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_salesperson", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if salesperson == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salesperson not found"})
		return
	}

	c.JSON(http.StatusOK, salesperson)
}

func (h *Handler) ListCounties(c *gin.Context) {
	counties, err := h.sales.GetCounties(c.Query("state"))
	if err != nil {
		slog.Error("Database error", "operation", "get_counties", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counties": counties, "total": len(counties)})
}

func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.site.GetTestimonials(true)
	if err != nil {
		slog.Error("Database error", "operation", "get_testimonials", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials, "total": len(testimonials)})
}

func (h *Handler) GetNavigation(c *gin.Context) {
	items, err := h.site.GetNavigation(true)
	if err != nil {
		slog.Error("Database error", "operation", "get_navigation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"navigation": items})
}
