package api

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lakelandequipment/site/app/cfg"
	"github.com/lakelandequipment/site/app/database"
)

func setupTestConfig() {
	oldArgs := os.Args
	os.Args = []string{"test"}
	defer func() {
		os.Args = oldArgs
	}()

	os.Setenv("BASE_URL", "https://www.lakelandequipment.com")
	os.Setenv("SITE_NAME", "Lakeland Equipment")

	cfg.Load()
}

func testPosts() []database.Post {
	publishedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	image := "https://www.lakelandequipment.com/uploads/mixer.jpg"

	return []database.Post{
		{
			ID:               "11111111-1111-1111-1111-111111111111",
			Title:            "Choosing a Commercial Mixer & Stand",
			Slug:             "choosing-a-commercial-mixer",
			Excerpt:          "Mixer buying guide",
			Content:          "<p>Mixers matter.</p>",
			Author:           "Pat Miller",
			FeaturedImageURL: &image,
			IsPublished:      true,
			PublishedAt:      &publishedAt,
		},
		{
			ID:          "22222222-2222-2222-2222-222222222222",
			Title:       "Walk-In Cooler Maintenance",
			Slug:        "walk-in-cooler-maintenance",
			Content:     "<p>Clean the coils.</p>",
			IsPublished: true,
		},
	}
}

func TestGenerateFeed(t *testing.T) {
	setupTestConfig()

	generator := NewGenerator()
	rss := generator.Run(testPosts())

	if !strings.HasPrefix(rss, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Expected XML declaration at start of feed")
	}

	expectations := []string{
		`<rss version="2.0"`,
		"<title>Lakeland Equipment</title>",
		"<link>https://www.lakelandequipment.com/blog</link>",
		`<atom:link href="https://www.lakelandequipment.com/feed.xml" rel="self"`,
		"<title>Choosing a Commercial Mixer &amp; Stand</title>",
		`<guid isPermaLink="true">https://www.lakelandequipment.com/blog/choosing-a-commercial-mixer</guid>`,
		"<description>Mixer buying guide</description>",
		"<content:encoded><![CDATA[<p>Mixers matter.</p>]]></content:encoded>",
		"<author>Pat Miller</author>",
		"<title>Walk-In Cooler Maintenance</title>",
	}

	for _, expected := range expectations {
		if !strings.Contains(rss, expected) {
			t.Errorf("Expected feed to contain %q", expected)
		}
	}
}

func TestGenerateFeedPubDate(t *testing.T) {
	setupTestConfig()

	generator := NewGenerator()
	rss := generator.Run(testPosts())

	publishedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if !strings.Contains(rss, "<pubDate>"+publishedAt.Format(time.RFC1123Z)+"</pubDate>") {
		t.Error("Expected pubDate from the post's publish timestamp")
	}
	if !strings.Contains(rss, "<lastBuildDate>"+publishedAt.Format(time.RFC1123Z)+"</lastBuildDate>") {
		t.Error("Expected lastBuildDate to track the newest post")
	}

	// The second post has no publish timestamp and must not emit a pubDate
	if strings.Count(rss, "<pubDate>") != 1 {
		t.Errorf("Expected exactly one pubDate, got: %d", strings.Count(rss, "<pubDate>"))
	}
}

func TestGenerateFeedEmpty(t *testing.T) {
	setupTestConfig()

	generator := NewGenerator()
	rss := generator.Run(nil)

	if !strings.Contains(rss, "<channel>") || !strings.Contains(rss, "</channel>") {
		t.Error("Expected a valid channel envelope for an empty feed")
	}
	if strings.Contains(rss, "<item>") {
		t.Error("Expected no items in an empty feed")
	}
}

func TestGenerateFeedMissingDescription(t *testing.T) {
	setupTestConfig()

	generator := NewGenerator()
	rss := generator.Run(testPosts())

	if !strings.Contains(rss, "<description>No description available</description>") {
		t.Error("Expected fallback description for posts without an excerpt")
	}
}
