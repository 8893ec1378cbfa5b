package wxr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WordPress uses an all-zero date to mean "not published".
const zeroDate = "0000-00-00 00:00:00"

const thumbnailMetaKey = "_thumbnail_id"

// attachmentPrefix marks a forward reference to an attachment item that may
// appear later in document order. References are resolved after the full scan.
const attachmentPrefix = "attachment:"

// wxrItem is the intermediate representation of one <item> element.
// Field tags carry no namespace so they match by local name: WXR documents
// declare the wp/dc/content namespaces with conventional prefixes, but the
// binding is not something to hard-depend on.
type wxrItem struct {
	Title         string        `xml:"title"`
	PostID        string        `xml:"post_id"`
	Slug          string        `xml:"post_name"`
	PostType      string        `xml:"post_type"`
	Status        string        `xml:"status"`
	Creator       string        `xml:"creator"`
	PostDateGMT   string        `xml:"post_date_gmt"`
	AttachmentURL string        `xml:"attachment_url"`
	Encoded       []wxrEncoded  `xml:"encoded"`
	Categories    []wxrCategory `xml:"category"`
	Meta          []wxrMeta     `xml:"postmeta"`
}

// wxrEncoded holds a content:encoded or excerpt:encoded payload; the two
// share a local name and are told apart by namespace URL.
type wxrEncoded struct {
	XMLName xml.Name
	Data    string `xml:",chardata"`
}

type wxrCategory struct {
	Domain string `xml:"domain,attr"`
	Name   string `xml:",chardata"`
}

type wxrMeta struct {
	Key   string `xml:"meta_key"`
	Value string `xml:"meta_value"`
}

// Parser converts WordPress eXtended RSS (WXR) export documents into
// structured post records.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run parses a full WXR document. It never returns an error: document-level
// and item-level failures are collected into the result's Errors list, and a
// document that cannot be parsed at all yields an otherwise empty result with
// a single error entry. One malformed item does not stop the remaining items
// from being processed.
func (p *Parser) Run(data []byte) *ParseResult {
	result := &ParseResult{
		Posts:      []Post{},
		Categories: []string{},
		Tags:       []string{},
		Errors:     []string{},
	}

	categorySet := make(map[string]struct{})
	tagSet := make(map[string]struct{})
	attachments := make(map[string]string)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	itemIndex := 0
	sawElement := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			// EOF before any element means there was no XML document at all
			if !sawElement {
				result.Errors = append(result.Errors, "malformed XML document: no root element")
			}
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("malformed XML document: %v", err))
			break
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if start.Name.Local != "item" {
			continue
		}

		itemIndex++

		var item wxrItem
		if err := decoder.DecodeElement(&item, &start); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: failed to decode: %v", itemIndex, err))
			continue
		}

		switch item.PostType {
		case "attachment":
			id := strings.TrimSpace(item.PostID)
			url := strings.TrimSpace(item.AttachmentURL)
			if id != "" && url != "" {
				attachments[id] = url
			}
		case "post":
			post, err := p.extractPost(item, categorySet, tagSet)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("item %d: %v", itemIndex, err))
				continue
			}
			result.Posts = append(result.Posts, post)
		default:
			// Pages, nav menu items, and other content types are excluded silently
		}
	}

	p.resolveAttachments(result.Posts, attachments)

	result.Categories = sortedKeys(categorySet)
	result.Tags = sortedKeys(tagSet)

	slog.Debug("Parsed WXR document",
		"items", itemIndex,
		"posts", len(result.Posts),
		"attachments", len(attachments),
		"errors", len(result.Errors))

	return result
}

func (p *Parser) extractPost(item wxrItem, categorySet, tagSet map[string]struct{}) (Post, error) {
	sourceID, err := strconv.Atoi(strings.TrimSpace(item.PostID))
	if err != nil {
		return Post{}, fmt.Errorf("invalid post id %q", item.PostID)
	}

	content, excerpt := splitEncoded(item.Encoded)

	post := Post{
		SourceID:    sourceID,
		Title:       DecodeEntities(item.Title),
		Slug:        item.Slug,
		Content:     CleanContent(content),
		Excerpt:     DecodeEntities(strings.TrimSpace(excerpt)),
		Author:      DecodeEntities(item.Creator),
		Status:      item.Status,
		PublishedAt: parseGMTDate(item.PostDateGMT),
		Categories:  []string{},
		Tags:        []string{},
	}

	for _, c := range item.Categories {
		name := DecodeEntities(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		switch c.Domain {
		case "category":
			post.Categories = append(post.Categories, name)
			categorySet[name] = struct{}{}
		case "post_tag":
			post.Tags = append(post.Tags, name)
			tagSet[name] = struct{}{}
		}
	}

	for _, meta := range item.Meta {
		if strings.TrimSpace(meta.Key) == thumbnailMetaKey {
			if value := strings.TrimSpace(meta.Value); value != "" {
				ref := attachmentPrefix + value
				post.FeaturedImageURL = &ref
			}
		}
	}

	return post, nil
}

// splitEncoded separates the content and excerpt payloads of an item. Both
// carry the local name "encoded"; the excerpt one lives in a namespace whose
// URL contains "excerpt" across all WXR versions.
func splitEncoded(encoded []wxrEncoded) (content, excerpt string) {
	for _, e := range encoded {
		if strings.Contains(e.XMLName.Space, "excerpt") {
			excerpt = e.Data
		} else {
			content = e.Data
		}
	}
	return content, excerpt
}

// resolveAttachments replaces attachment placeholder references with real
// URLs. A reference that matches no attachment becomes nil, never a dangling
// placeholder string.
func (p *Parser) resolveAttachments(posts []Post, attachments map[string]string) {
	for i := range posts {
		ref := posts[i].FeaturedImageURL
		if ref == nil || !strings.HasPrefix(*ref, attachmentPrefix) {
			continue
		}

		id := strings.TrimPrefix(*ref, attachmentPrefix)
		if url, ok := attachments[id]; ok {
			resolved := url
			posts[i].FeaturedImageURL = &resolved
		} else {
			posts[i].FeaturedImageURL = nil
		}
	}
}

// parseGMTDate parses the wp:post_date_gmt field as UTC. The zero-date
// sentinel and unparseable values yield nil rather than a fabricated default.
func parseGMTDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || value == zeroDate {
		return nil
	}

	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return nil
	}

	t = t.UTC()
	return &t
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
