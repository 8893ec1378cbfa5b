package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lakelandequipment/site/app/content"
	"github.com/lakelandequipment/site/app/database"
	"github.com/lakelandequipment/site/app/wxr"
)

// ImportWordPress runs the WXR import pipeline over the raw XML request body.
// The import is synchronous and request-scoped; the full report, including
// per-post skip and error detail, is returned to the operator.
func (h *Handler) ImportWordPress(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty request body, expected a WXR XML document"})
		return
	}

	opts := wxr.ImportOptions{
		ImportAsDraft:  c.Query("as_draft") == "true",
		SkipDuplicates: c.Query("skip_duplicates") == "true",
	}

	report := h.importer.Run(c.Request.Context(), data, opts)

	c.JSON(http.StatusOK, report)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var payload postPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := database.Post{
		Title:            payload.Title,
		Slug:             payload.Slug,
		Excerpt:          payload.Excerpt,
		Content:          payload.Content,
		Author:           payload.Author,
		FeaturedImageURL: payload.FeaturedImageURL,
		IsPublished:      payload.IsPublished,
	}
	if post.Slug == "" {
		post.Slug = content.Slugify(post.Title)
	}

	id, err := h.posts.CreatePost(post)
	if err != nil {
		slog.Error("Database error", "operation", "create_post", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "slug": post.Slug})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var payload postPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := database.Post{
		ID:               c.Param("id"),
		Title:            payload.Title,
		Slug:             payload.Slug,
		Excerpt:          payload.Excerpt,
		Content:          payload.Content,
		Author:           payload.Author,
		FeaturedImageURL: payload.FeaturedImageURL,
		IsPublished:      payload.IsPublished,
	}
	if post.Slug == "" {
		post.Slug = content.Slugify(post.Title)
	}

	if err := h.posts.UpdatePost(post); err != nil {
		slog.Error("Database error", "operation", "update_post", "id", post.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

func (h *Handler) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if err := h.posts.DeletePost(id); err != nil {
		slog.Error("Database error", "operation", "delete_post", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := database.Category{
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		Position:    payload.Position,
	}
	if category.Slug == "" {
		category.Slug = content.Slugify(category.Name)
	}

	id, err := h.catalog.CreateCategory(category)
	if err != nil {
		slog.Error("Database error", "operation", "create_category", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "slug": category.Slug})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := database.Category{
		ID:          c.Param("id"),
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		Position:    payload.Position,
	}
	if category.Slug == "" {
		category.Slug = content.Slugify(category.Name)
	}

	if err := h.catalog.UpdateCategory(category); err != nil {
		slog.Error("Database error", "operation", "update_category", "id", category.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": category.ID})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalog.DeleteCategory(id); err != nil {
		slog.Error("Database error", "operation", "delete_category", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateMachine(c *gin.Context) {
	var payload machinePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine := database.Machine{
		CategoryID:  payload.CategoryID,
		Name:        payload.Name,
		Slug:        payload.Slug,
		Brand:       payload.Brand,
		ModelNumber: payload.ModelNumber,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		IsFeatured:  payload.IsFeatured,
	}
	if machine.Slug == "" {
		machine.Slug = content.Slugify(machine.Name)
	}

	id, err := h.catalog.CreateMachine(machine)
	if err != nil {
		slog.Error("Database error", "operation", "create_machine", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create machine"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "slug": machine.Slug})
}

func (h *Handler) UpdateMachine(c *gin.Context) {
	var payload machinePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine := database.Machine{
		ID:          c.Param("id"),
		CategoryID:  payload.CategoryID,
		Name:        payload.Name,
		Slug:        payload.Slug,
		Brand:       payload.Brand,
		ModelNumber: payload.ModelNumber,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		IsFeatured:  payload.IsFeatured,
	}
	if machine.Slug == "" {
		machine.Slug = content.Slugify(machine.Name)
	}

	if err := h.catalog.UpdateMachine(machine); err != nil {
		slog.Error("Database error", "operation", "update_machine", "id", machine.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update machine"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": machine.ID})
}

func (h *Handler) DeleteMachine(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalog.DeleteMachine(id); err != nil {
		slog.Error("Database error", "operation", "delete_machine", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete machine"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateSalesperson(c *gin.Context) {
	var payload salespersonPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	salesperson := database.Salesperson{
		Name:     payload.Name,
		Slug:     payload.Slug,
		Email:    payload.Email,
		Phone:    payload.Phone,
		PhotoURL: payload.PhotoURL,
	}
	if salesperson.Slug == "" {
		salesperson.Slug = content.Slugify(salesperson.Name)
	}

	id, err := h.sales.CreateSalesperson(salesperson)
	if err != nil {
		slog.Error("Database error", "operation", "create_salesperson", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salesperson"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "slug": salesperson.Slug})
}

func (h *Handler) DeleteSalesperson(c *gin.Context) {
	id := c.Param("id")
	if err := h.sales.DeleteSalesperson(id); err != nil {
		slog.Error("Database error", "operation", "delete_salesperson", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete salesperson"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignCounty sets or clears the salesperson for a single county.
// A null salesperson_id leaves the county unassigned.
func (h *Handler) AssignCounty(c *gin.Context) {
	var payload assignCountyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fips := c.Param("fips")
	if err := h.sales.AssignCounty(fips, payload.SalespersonID); err != nil {
		slog.Error("Database error", "operation", "assign_county", "fips", fips, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign county"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fips": fips})
}

// ReassignCounties transfers counties between salespeople in bulk, used when
// a territory changes hands. An empty fips list moves the whole territory.
func (h *Handler) ReassignCounties(c *gin.Context) {
	var payload reassignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.sales.ReassignCounties(payload.FromSalespersonID, payload.ToSalespersonID, payload.FIPS)
	if err != nil {
		slog.Error("Database error", "operation", "reassign_counties",
			"from", payload.FromSalespersonID, "to", payload.ToSalespersonID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reassign counties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reassigned": affected})
}

func (h *Handler) CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial := database.Testimonial{
		Author:      payload.Author,
		Company:     payload.Company,
		Quote:       payload.Quote,
		IsPublished: payload.IsPublished == nil || *payload.IsPublished,
	}

	id, err := h.site.CreateTestimonial(testimonial)
	if err != nil {
		slog.Error("Database error", "operation", "create_testimonial", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id := c.Param("id")
	if err := h.site.DeleteTestimonial(id); err != nil {
		slog.Error("Database error", "operation", "delete_testimonial", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AdminListNavigation(c *gin.Context) {
	items, err := h.site.GetNavigation(false)
	if err != nil {
		slog.Error("Database error", "operation", "admin_get_navigation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"navigation": items, "total": len(items)})
}

func (h *Handler) CreateNavigationItem(c *gin.Context) {
	var payload navigationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := database.NavigationItem{
		Label:     payload.Label,
		URL:       payload.URL,
		Position:  payload.Position,
		IsVisible: payload.IsVisible == nil || *payload.IsVisible,
	}

	id, err := h.site.CreateNavigationItem(item)
	if err != nil {
		slog.Error("Database error", "operation", "create_navigation_item", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create navigation item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateNavigationItem(c *gin.Context) {
	var payload navigationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := database.NavigationItem{
		ID:        c.Param("id"),
		Label:     payload.Label,
		URL:       payload.URL,
		Position:  payload.Position,
		IsVisible: payload.IsVisible == nil || *payload.IsVisible,
	}

	if err := h.site.UpdateNavigationItem(item); err != nil {
		slog.Error("Database error", "operation", "update_navigation_item", "id", item.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update navigation item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": item.ID})
}

func (h *Handler) DeleteNavigationItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.site.DeleteNavigationItem(id); err != nil {
		slog.Error("Database error", "operation", "delete_navigation_item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete navigation item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderNavigation persists a drag-and-drop ordering: the submitted id list
// becomes the new position sequence.
func (h *Handler) ReorderNavigation(c *gin.Context) {
	var payload reorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.site.ReorderNavigation(payload.IDs); err != nil {
		slog.Error("Database error", "operation", "reorder_navigation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder navigation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reordered": len(payload.IDs)})
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.site.GetSettings()
	if err != nil {
		slog.Error("Database error", "operation", "get_settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{"settings": values})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for key, value := range payload.Settings {
		if err := h.site.UpsertSetting(key, value); err != nil {
			slog.Error("Database error", "operation", "upsert_setting", "key", key, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting " + key})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"updated": len(payload.Settings)})
}
