package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"goaltask/internal/service"
)

// ErrNoProperties is returned when the database schema has no fields at all.
var ErrNoProperties = errors.New("database has no properties")

// Schema reads the todo database's properties in the order the API returns them.
func (c *Client) Schema(ctx context.Context) ([]service.SchemaField, error) {
	path := "/v1/databases/" + url.PathEscape(c.databaseID)
	data, err := c.do(ctx, "get database", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return parseSchema(data), nil
}

// parseSchema walks the properties object in document order, which a Go map
// would lose.
func parseSchema(data []byte) []service.SchemaField {
	var fields []service.SchemaField
	gjson.GetBytes(data, "properties").ForEach(func(name, prop gjson.Result) bool {
		raw := prop.Get("type").String()
		f := service.SchemaField{
			Name:    name.String(),
			Type:    fieldType(raw),
			RawType: raw,
		}
		if f.Type == service.FieldSelect {
			for _, opt := range prop.Get("select.options").Array() {
				f.Options = append(f.Options, opt.Get("name").String())
			}
		}
		fields = append(fields, f)
		return true
	})
	return fields
}

func fieldType(raw string) service.FieldType {
	switch raw {
	case "title":
		return service.FieldTitle
	case "select":
		return service.FieldSelect
	case "date":
		return service.FieldDate
	default:
		return service.FieldOther
	}
}

// titleField returns the title-typed field, or the first field when none is
// title-typed. That fallback depends on the API's property order, which is
// not guaranteed across API versions.
func titleField(fields []service.SchemaField) (service.SchemaField, bool, error) {
	if len(fields) == 0 {
		return service.SchemaField{}, false, ErrNoProperties
	}
	for _, f := range fields {
		if f.Type == service.FieldTitle {
			return f, false, nil
		}
	}
	return fields[0], true, nil
}

type createPageRequest struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]propertyValue `json:"properties"`
	Children   []blockObject            `json:"children"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type propertyValue struct {
	Title  []richText   `json:"title,omitempty"`
	Select *selectValue `json:"select,omitempty"`
	Date   *dateValue   `json:"date,omitempty"`
}

type richText struct {
	Type string      `json:"type,omitempty"`
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type selectValue struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type blockObject struct {
	Object    string    `json:"object"`
	Type      string    `json:"type"`
	Paragraph paragraph `json:"paragraph"`
}

type paragraph struct {
	RichText []richText `json:"rich_text"`
}

// buildPage fills the title field with the draft title, every select field
// with its first declared option and every date field with today. Other
// fields stay unset. The description becomes the page's only paragraph.
func buildPage(databaseID string, fields []service.SchemaField, d service.Draft, today string) (createPageRequest, string, error) {
	title, _, err := titleField(fields)
	if err != nil {
		return createPageRequest{}, "", err
	}

	props := map[string]propertyValue{
		title.Name: {Title: []richText{{Text: textContent{Content: d.Title}}}},
	}
	for _, f := range fields {
		if f.Name == title.Name {
			continue
		}
		switch f.Type {
		case service.FieldSelect:
			if len(f.Options) > 0 {
				props[f.Name] = propertyValue{Select: &selectValue{Name: f.Options[0]}}
			}
		case service.FieldDate:
			props[f.Name] = propertyValue{Date: &dateValue{Start: today}}
		}
	}

	return createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: props,
		Children: []blockObject{{
			Object: "block",
			Type:   "paragraph",
			Paragraph: paragraph{RichText: []richText{{
				Type: "text",
				Text: textContent{Content: d.Description},
			}}},
		}},
	}, title.Name, nil
}

// CreateTask adds one page to the todo database and returns its ID.
func (c *Client) CreateTask(ctx context.Context, d service.Draft) (string, error) {
	fields, err := c.Schema(ctx)
	if err != nil {
		return "", err
	}

	if _, fellBack, err := titleField(fields); err == nil && fellBack {
		c.log.Warn("no title property found, using first property", zap.String("property", fields[0].Name))
	}

	today := c.now().Format(time.DateOnly)
	req, titleName, err := buildPage(c.databaseID, fields, d, today)
	if err != nil {
		return "", fmt.Errorf("failed to build task page: %w", err)
	}
	c.log.Debug("creating task page",
		zap.String("title_property", titleName),
		zap.Int("properties", len(req.Properties)),
		zap.String("date", today))

	data, err := c.do(ctx, "create task", http.MethodPost, "/v1/pages", req)
	if err != nil {
		return "", err
	}

	id := gjson.GetBytes(data, "id").String()
	if id == "" {
		return "", fmt.Errorf("create task: response has no page id")
	}
	return id, nil
}
