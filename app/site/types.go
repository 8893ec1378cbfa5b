package site

// Config is the site seed configuration, loaded from a YAML file at startup
// and registered into the database the same way on every boot.
type Config struct {
	Settings   map[string]string `yaml:"settings"`
	Navigation []NavItem         `yaml:"navigation"`
}

// NavItem is one navigation menu entry; position follows document order.
type NavItem struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}
