package database

import (
	"time"
)

type Post struct {
	ID               string // Database UUID
	Title            string
	Slug             string
	Excerpt          string
	Content          string
	Author           string
	FeaturedImageURL *string
	IsPublished      bool
	PublishedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Machine struct {
	ID          string
	CategoryID  *string
	Name        string
	Slug        string
	Brand       string
	ModelNumber string
	Description string
	ImageURL    string
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Salesperson struct {
	ID        string
	Name      string
	Slug      string
	Email     string
	Phone     string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type County struct {
	FIPS          string // Federal county identifier, used as the primary key
	Name          string
	State         string
	SalespersonID *string
	UpdatedAt     time.Time
}

type Testimonial struct {
	ID          string
	Author      string
	Company     string
	Quote       string
	IsPublished bool
	CreatedAt   time.Time
}

type NavigationItem struct {
	ID        string
	Label     string
	URL       string
	Position  int
	IsVisible bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
