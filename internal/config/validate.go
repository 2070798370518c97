package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigError reports settings that are missing, invalid, or still set to
// their placeholder value.
type ConfigError struct {
	// Fields holds environment variable names, in struct order.
	Fields []string
}

func (e *ConfigError) Error() string {
	return "not configured: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})
	_ = v.RegisterValidation("configured", func(fl validator.FieldLevel) bool {
		return isConfigured(fl.Field().String())
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Config)
		if c.Destination == DestinationNotion && !isConfigured(c.TodoDatabaseID) {
			sl.ReportError(c.TodoDatabaseID, "TODO_DATABASE_ID", "TodoDatabaseID", "configured", "")
		}
	}, Config{})
	return v
}

func isConfigured(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != GoalsPagePlaceholder && s != TodoDatabasePlaceholder
}

// Validate checks every setting needed for network commands. It returns a
// *ConfigError naming each offending setting.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cerr := &ConfigError{}
	for _, fe := range verrs {
		cerr.Fields = append(cerr.Fields, fe.Field())
	}
	return cerr
}

// Setting is the presence status of one setting, as reported by the check command.
type Setting struct {
	Name string
	OK   bool
}

// Settings reports which required settings are set to a usable value.
// Secrets are never included, only their presence.
func (c *Config) Settings() []Setting {
	list := []Setting{
		{"NOTION_TOKEN", c.NotionToken != ""},
		{"OPENAI_API_KEY", c.OpenAIAPIKey != ""},
		{"GOALS_PAGE_ID", isConfigured(c.GoalsPageID)},
	}
	if c.Destination == DestinationNotion {
		list = append(list, Setting{"TODO_DATABASE_ID", isConfigured(c.TodoDatabaseID)})
	} else {
		list = append(list, Setting{"GTASKS_LIST", c.GTasksList != ""})
	}
	return list
}
