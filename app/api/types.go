package api

import (
	"github.com/lakelandequipment/site/app/database"
	"github.com/lakelandequipment/site/app/wxr"
)

type Handler struct {
	posts     database.PostRepository
	catalog   database.CatalogRepository
	sales     database.SalesRepository
	site      database.SiteRepository
	importer  *wxr.Importer
	generator *Generator
}

type postPayload struct {
	Title            string  `json:"title" binding:"required"`
	Slug             string  `json:"slug"`
	Excerpt          string  `json:"excerpt"`
	Content          string  `json:"content"`
	Author           string  `json:"author"`
	FeaturedImageURL *string `json:"featured_image_url"`
	IsPublished      bool    `json:"is_published"`
}

type categoryPayload struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type machinePayload struct {
	CategoryID  *string `json:"category_id"`
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Brand       string  `json:"brand"`
	ModelNumber string  `json:"model_number"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	IsFeatured  bool    `json:"is_featured"`
}

type salespersonPayload struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
}

type testimonialPayload struct {
	Author      string `json:"author" binding:"required"`
	Company     string `json:"company"`
	Quote       string `json:"quote" binding:"required"`
	IsPublished *bool  `json:"is_published"`
}

type navigationPayload struct {
	Label     string `json:"label" binding:"required"`
	URL       string `json:"url" binding:"required"`
	Position  int    `json:"position"`
	IsVisible *bool  `json:"is_visible"`
}

type reorderPayload struct {
	IDs []string `json:"ids" binding:"required"`
}

type assignCountyPayload struct {
	SalespersonID *string `json:"salesperson_id"`
}

type reassignPayload struct {
	FromSalespersonID string   `json:"from_salesperson_id" binding:"required"`
	ToSalespersonID   string   `json:"to_salesperson_id" binding:"required"`
	FIPS              []string `json:"fips"`
}

type settingsPayload struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
