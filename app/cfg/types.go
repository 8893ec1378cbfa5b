package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	Port           string
	BaseUrl        string
	SiteConfigFile string
	APIAccessKey   string

	// Application metadata
	SiteName string
	Timezone string
	Debug    bool
	Version  string
}
