package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
settings:
  site_name: Lakeland Equipment
  phone: "555-0142"
navigation:
  - label: Home
    url: /
  - label: Equipment
    url: /machines
`

func TestParse(t *testing.T) {
	config, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if config.Settings["site_name"] != "Lakeland Equipment" {
		t.Errorf("Expected site_name setting, got: %q", config.Settings["site_name"])
	}
	if config.Settings["phone"] != "555-0142" {
		t.Errorf("Expected phone setting, got: %q", config.Settings["phone"])
	}

	if len(config.Navigation) != 2 {
		t.Fatalf("Expected 2 navigation items, got: %d", len(config.Navigation))
	}
	if config.Navigation[1].Label != "Equipment" || config.Navigation[1].URL != "/machines" {
		t.Errorf("Unexpected navigation item: %+v", config.Navigation[1])
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("settings: [not a map"))
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestParseMissingNavigationFields(t *testing.T) {
	_, err := Parse([]byte("navigation:\n  - label: Home\n"))
	if err == nil {
		t.Fatal("Expected error for navigation item without url")
	}
	if !strings.Contains(err.Error(), "url is required") {
		t.Errorf("Unexpected error: %v", err)
	}

	_, err = Parse([]byte("navigation:\n  - url: /\n"))
	if err == nil || !strings.Contains(err.Error(), "label is required") {
		t.Errorf("Expected label error, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected missing file to be tolerated, got: %v", err)
	}
	if config != nil {
		t.Errorf("Expected nil config for missing file, got: %+v", config)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config == nil || len(config.Navigation) != 2 {
		t.Errorf("Unexpected config: %+v", config)
	}
}
