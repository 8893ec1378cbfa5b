package api

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/lakelandequipment/site/app/cfg"
	"github.com/lakelandequipment/site/app/database"
)

// Generator renders the public blog as an RSS 2.0 feed
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(posts []database.Post) string {
	var buf bytes.Buffer

	config := cfg.Get()
	baseURL := config.BaseUrl
	if baseURL == "" {
		baseURL = "http://localhost:" + config.Port
	}

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", config.SiteName, 4)
	g.writeElement(&buf, "link", baseURL+"/blog", 4)
	g.writeElement(&buf, "description", fmt.Sprintf("News and updates from %s", config.SiteName), 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(baseURL+"/feed.xml")))

	lastBuildDate := time.Now().In(time.Local)
	if len(posts) > 0 && posts[0].PublishedAt != nil {
		lastBuildDate = *posts[0].PublishedAt
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("%s/%s", config.SiteName, config.Version), 4)

	for _, post := range posts {
		g.writeItem(&buf, baseURL, post)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, baseURL string, post database.Post) {
	buf.WriteString("    <item>\n")

	link := baseURL + "/blog/" + post.Slug

	buf.WriteString("      <guid isPermaLink=\"true\">")
	xml.EscapeText(buf, []byte(link))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", post.Title, 6)
	g.writeElement(buf, "link", link, 6)

	description := post.Excerpt
	if description == "" {
		description = "No description available"
	}
	g.writeElement(buf, "description", description, 6)

	if post.Content != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(post.Content)
		buf.WriteString("]]></content:encoded>\n")
	}

	if post.PublishedAt != nil {
		g.writeElement(buf, "pubDate", post.PublishedAt.Format(time.RFC1123Z), 6)
	}

	if post.Author != "" {
		g.writeElement(buf, "author", post.Author, 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
