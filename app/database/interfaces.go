package database

type PostRepository interface {
	GetPublishedPosts(limit int) ([]Post, error)
	GetPostBySlug(slug string) (*Post, error)
	GetPostCount() (int, error)

	SlugExists(slug string) (bool, error)
	CreatePost(post Post) (string, error)
	UpdatePost(post Post) error
	DeletePost(id string) error
}

type CatalogRepository interface {
	GetCategories() ([]Category, error)
	GetCategoryBySlug(slug string) (*Category, error)
	CreateCategory(category Category) (string, error)
	UpdateCategory(category Category) error
	DeleteCategory(id string) error

	GetMachines(categoryID string, featuredOnly bool) ([]Machine, error)
	GetMachineBySlug(slug string) (*Machine, error)
	CreateMachine(machine Machine) (string, error)
	UpdateMachine(machine Machine) error
	DeleteMachine(id string) error
}

type SalesRepository interface {
	GetSalespeople() ([]Salesperson, error)
	GetSalespersonBySlug(slug string) (*Salesperson, error)
	CreateSalesperson(salesperson Salesperson) (string, error)
	DeleteSalesperson(id string) error

	GetCounties(state string) ([]County, error)
	AssignCounty(fips string, salespersonID *string) error
	ReassignCounties(fromID, toID string, fips []string) (int64, error)
}

type SiteRepository interface {
	GetTestimonials(publishedOnly bool) ([]Testimonial, error)
	CreateTestimonial(testimonial Testimonial) (string, error)
	DeleteTestimonial(id string) error

	GetSettings() ([]Setting, error)
	UpsertSetting(key, value string) error

	GetNavigation(visibleOnly bool) ([]NavigationItem, error)
	CreateNavigationItem(item NavigationItem) (string, error)
	UpdateNavigationItem(item NavigationItem) error
	DeleteNavigationItem(id string) error
	ReorderNavigation(ids []string) error
	GetNavigationCount() (int, error)
}
