package wxr

import (
	"strings"
	"testing"
	"time"
)

const sampleWXR = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:excerpt="http://wordpress.org/export/1.2/excerpt/"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:wp="http://wordpress.org/export/1.2/">
  <channel>
    <title>Lakeland Equipment Blog</title>
    <item>
      <title>Choosing a Commercial Mixer &amp;amp; Stand</title>
      <dc:creator><![CDATA[Pat O&#039;Brien]]></dc:creator>
      <content:encoded><![CDATA[<!-- wp:paragraph -->
<p>Mixers matter.</p>
<!-- /wp:paragraph -->
<p>   </p>]]></content:encoded>
      <excerpt:encoded><![CDATA[Mixer buying guide]]></excerpt:encoded>
      <wp:post_id>101</wp:post_id>
      <wp:post_date_gmt>2024-03-15 10:30:00</wp:post_date_gmt>
      <wp:post_name>choosing-a-commercial-mixer</wp:post_name>
      <wp:status>publish</wp:status>
      <wp:post_type>post</wp:post_type>
      <category domain="category"><![CDATA[Equipment]]></category>
      <category domain="category"><![CDATA[Buying Guides]]></category>
      <category domain="post_tag"><![CDATA[mixers]]></category>
      <category domain="author"><![CDATA[ignored-domain]]></category>
      <wp:postmeta>
        <wp:meta_key><![CDATA[_thumbnail_id]]></wp:meta_key>
        <wp:meta_value><![CDATA[42]]></wp:meta_value>
      </wp:postmeta>
    </item>
    <item>
      <title>About Us</title>
      <wp:post_id>102</wp:post_id>
      <wp:post_name>about-us</wp:post_name>
      <wp:post_type>page</wp:post_type>
    </item>
    <item>
      <title>Never Published</title>
      <content:encoded><![CDATA[<p>Draft body</p>]]></content:encoded>
      <wp:post_id>103</wp:post_id>
      <wp:post_date_gmt>0000-00-00 00:00:00</wp:post_date_gmt>
      <wp:post_name>never-published</wp:post_name>
      <wp:status>draft</wp:status>
      <wp:post_type>post</wp:post_type>
      <category domain="category"><![CDATA[Equipment]]></category>
      <category domain="category"><![CDATA[equipment]]></category>
      <wp:postmeta>
        <wp:meta_key><![CDATA[_thumbnail_id]]></wp:meta_key>
        <wp:meta_value><![CDATA[999]]></wp:meta_value>
      </wp:postmeta>
    </item>
    <item>
      <title>Mixer Photo</title>
      <wp:post_id>42</wp:post_id>
      <wp:post_type>attachment</wp:post_type>
      <wp:attachment_url>https://example.com/uploads/mixer.jpg</wp:attachment_url>
    </item>
  </channel>
</rss>`

func TestParseWXR(t *testing.T) {
	parser := NewParser()
	result := parser.Run([]byte(sampleWXR))

	if len(result.Errors) != 0 {
		t.Fatalf("Expected no errors, got: %v", result.Errors)
	}

	// Pages and attachments are excluded from posts
	if len(result.Posts) != 2 {
		t.Fatalf("Expected 2 posts, got: %d", len(result.Posts))
	}

	post := result.Posts[0]
	if post.SourceID != 101 {
		t.Errorf("Expected source id 101, got: %d", post.SourceID)
	}
	if post.Title != "Choosing a Commercial Mixer & Stand" {
		t.Errorf("Expected entity-decoded title, got: %q", post.Title)
	}
	if post.Slug != "choosing-a-commercial-mixer" {
		t.Errorf("Expected slug 'choosing-a-commercial-mixer', got: %q", post.Slug)
	}
	if post.Author != "Pat O'Brien" {
		t.Errorf("Expected entity-decoded author, got: %q", post.Author)
	}
	if post.Excerpt != "Mixer buying guide" {
		t.Errorf("Expected excerpt 'Mixer buying guide', got: %q", post.Excerpt)
	}
	if post.Content != "<p>Mixers matter.</p>" {
		t.Errorf("Expected cleaned content, got: %q", post.Content)
	}
	if len(post.Categories) != 2 || post.Categories[0] != "Equipment" || post.Categories[1] != "Buying Guides" {
		t.Errorf("Expected categories in document order, got: %v", post.Categories)
	}
	if len(post.Tags) != 1 || post.Tags[0] != "mixers" {
		t.Errorf("Expected tags [mixers], got: %v", post.Tags)
	}

	expectedDate := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if post.PublishedAt == nil || !post.PublishedAt.Equal(expectedDate) {
		t.Errorf("Expected published at %v, got: %v", expectedDate, post.PublishedAt)
	}

	// The attachment appears after the post in document order, so this
	// exercises forward-reference resolution
	if post.FeaturedImageURL == nil || *post.FeaturedImageURL != "https://example.com/uploads/mixer.jpg" {
		t.Errorf("Expected resolved featured image URL, got: %v", post.FeaturedImageURL)
	}
}

func TestParseWXRZeroDateAndUnresolvedAttachment(t *testing.T) {
	parser := NewParser()
	result := parser.Run([]byte(sampleWXR))

	draft := result.Posts[1]
	if draft.PublishedAt != nil {
		t.Errorf("Expected nil published date for zero-date sentinel, got: %v", draft.PublishedAt)
	}
	if draft.FeaturedImageURL != nil {
		t.Errorf("Expected nil featured image for unresolved attachment, got: %q", *draft.FeaturedImageURL)
	}
}

func TestParseWXRGlobalCategoriesAndTags(t *testing.T) {
	parser := NewParser()
	result := parser.Run([]byte(sampleWXR))

	// Exact-string dedup across posts, sorted ascending; "Equipment" and
	// "equipment" stay distinct
	expected := []string{"Buying Guides", "Equipment", "equipment"}
	if len(result.Categories) != len(expected) {
		t.Fatalf("Expected %d categories, got: %v", len(expected), result.Categories)
	}
	for i, want := range expected {
		if result.Categories[i] != want {
			t.Errorf("Expected category %q at index %d, got: %q", want, i, result.Categories[i])
		}
	}

	if len(result.Tags) != 1 || result.Tags[0] != "mixers" {
		t.Errorf("Expected tags [mixers], got: %v", result.Tags)
	}
}

func TestParseWXRMalformedItemIsIsolated(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rss version="2.0" xmlns:wp="http://wordpress.org/export/1.2/">
  <channel>
    <item>
      <title>First</title>
      <wp:post_id>1</wp:post_id>
      <wp:post_name>first</wp:post_name>
      <wp:post_type>post</wp:post_type>
    </item>
    <item>
      <title>Broken</title>
      <wp:post_id>not-a-number</wp:post_id>
      <wp:post_name>broken</wp:post_name>
      <wp:post_type>post</wp:post_type>
    </item>
    <item>
      <title>Third</title>
      <wp:post_id>3</wp:post_id>
      <wp:post_name>third</wp:post_name>
      <wp:post_type>post</wp:post_type>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	result := parser.Run([]byte(doc))

	if len(result.Posts) != 2 {
		t.Fatalf("Expected 2 posts, got: %d", len(result.Posts))
	}
	if result.Posts[0].Slug != "first" || result.Posts[1].Slug != "third" {
		t.Errorf("Expected the items around the broken one to survive, got: %v", result.Posts)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got: %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "item 2") {
		t.Errorf("Expected error to carry the item position, got: %q", result.Errors[0])
	}
}

func TestParseWXRFatalDocument(t *testing.T) {
	parser := NewParser()
	result := parser.Run([]byte("this is not XML at all <"))

	if len(result.Posts) != 0 {
		t.Errorf("Expected no posts, got: %d", len(result.Posts))
	}
	if len(result.Categories) != 0 || len(result.Tags) != 0 {
		t.Errorf("Expected empty category/tag lists")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected exactly 1 document error, got: %v", result.Errors)
	}
}

func TestParseWXREmptyDocument(t *testing.T) {
	parser := NewParser()

	for _, input := range [][]byte{nil, []byte(""), []byte("   \n  ")} {
		result := parser.Run(input)

		if len(result.Posts) != 0 {
			t.Errorf("Run(%q): expected no posts, got: %d", input, len(result.Posts))
		}
		if len(result.Errors) != 1 {
			t.Errorf("Run(%q): expected 1 document error, got: %v", input, result.Errors)
		}
	}
}

func TestParseGMTDate(t *testing.T) {
	tests := []struct {
		input string
		want  *time.Time
	}{
		{"0000-00-00 00:00:00", nil},
		{"", nil},
		{"not a date", nil},
		{"2024-13-45 99:99:99", nil},
	}

	for _, tt := range tests {
		if got := parseGMTDate(tt.input); got != nil {
			t.Errorf("parseGMTDate(%q): expected nil, got %v", tt.input, got)
		}
	}

	got := parseGMTDate("2024-03-15 10:30:00")
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("parseGMTDate: expected %v, got %v", want, got)
	}
}
