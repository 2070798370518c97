package notion

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Kind is a Notion block type.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindHeading1  Kind = "heading_1"
	KindHeading2  Kind = "heading_2"
	KindHeading3  Kind = "heading_3"
	KindBulleted  Kind = "bulleted_list_item"
	KindNumbered  Kind = "numbered_list_item"
	KindToDo      Kind = "to_do"
	KindToggle    Kind = "toggle"
)

// linePrefix holds the markdown-style prefix per handled kind.
// Numbered items always use "1. ".
var linePrefix = map[Kind]string{
	KindParagraph: "",
	KindHeading1:  "# ",
	KindHeading2:  "## ",
	KindHeading3:  "### ",
	KindBulleted:  "- ",
	KindNumbered:  "1. ",
	KindToDo:      "☐ ",
	KindToggle:    "▼ ",
}

// Block is one content block of a page.
type Block struct {
	ID   string
	Kind Kind

	// Runs are the plain-text values of the block's rich text, in order.
	Runs []string
}

// Text joins the block's text runs.
func (b Block) Text() string {
	return strings.Join(b.Runs, "")
}

// Line renders the block as a single line of text. It reports false for
// unhandled kinds and for blocks without text.
func (b Block) Line() (string, bool) {
	prefix, ok := linePrefix[b.Kind]
	if !ok {
		return "", false
	}
	text := b.Text()
	if text == "" {
		return "", false
	}
	return prefix + text, true
}

// Flatten renders blocks as newline-separated lines, preserving order.
func Flatten(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if line, ok := b.Line(); ok {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// Page is the subset of page metadata used for diagnostics.
type Page struct {
	ID     string
	Object string
	Title  string
}

// Page reads page metadata.
func (c *Client) Page(ctx context.Context, id string) (Page, error) {
	data, err := c.do(ctx, "read page", http.MethodGet, "/v1/pages/"+url.PathEscape(id), nil)
	if err != nil {
		return Page{}, err
	}

	doc := gjson.ParseBytes(data)
	p := Page{
		ID:     doc.Get("id").String(),
		Object: doc.Get("object").String(),
	}
	doc.Get("properties").ForEach(func(_, prop gjson.Result) bool {
		if prop.Get("type").String() != "title" {
			return true
		}
		p.Title = plainText(prop.Get("title"))
		return false
	})
	return p, nil
}

// Children returns the first page of child blocks of a block or page.
// Further pages are not requested.
func (c *Client) Children(ctx context.Context, id string) ([]Block, error) {
	path := "/v1/blocks/" + url.PathEscape(id) + "/children"
	data, err := c.do(ctx, "get page blocks", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(data)
	if doc.Get("has_more").Bool() {
		c.log.Debug("more blocks available, only the first page is read", zap.String("id", id))
	}

	var blocks []Block
	doc.Get("results").ForEach(func(_, v gjson.Result) bool {
		b := Block{ID: v.Get("id").String(), Kind: Kind(v.Get("type").String())}
		if b.Kind != "" {
			for _, run := range v.Get(string(b.Kind) + ".rich_text").Array() {
				b.Runs = append(b.Runs, run.Get("plain_text").String())
			}
		}
		blocks = append(blocks, b)
		return true
	})
	return blocks, nil
}

// GoalsText reads the configured goals page and flattens its blocks.
// The page metadata is fetched first so a missing page fails early.
func (c *Client) GoalsText(ctx context.Context) (string, error) {
	page, err := c.Page(ctx, c.pageID)
	if err != nil {
		return "", err
	}
	c.log.Debug("goals page read", zap.String("object", page.Object), zap.String("title", page.Title))

	blocks, err := c.Children(ctx, c.pageID)
	if err != nil {
		return "", err
	}
	for _, b := range blocks {
		if _, ok := linePrefix[b.Kind]; !ok {
			c.log.Debug("skipping unhandled block", zap.String("type", string(b.Kind)), zap.String("id", b.ID))
		}
	}

	text := Flatten(blocks)
	c.log.Info("goals page flattened", zap.Int("blocks", len(blocks)), zap.Int("chars", len(text)))
	return text, nil
}

func plainText(runs gjson.Result) string {
	var sb strings.Builder
	for _, r := range runs.Array() {
		sb.WriteString(r.Get("plain_text").String())
	}
	return sb.String()
}
