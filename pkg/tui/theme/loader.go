// ABOUTME: JSON theme file loading on top of a base theme
// ABOUTME: Unset palette fields inherit from the base so overrides can be partial

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Fields use snake_case to match the JSON file format.
type jsonPalette struct {
	Primary string `json:"primary"`
	Muted   string `json:"muted"`
	Accent  string `json:"accent"`

	Warning string `json:"warning"`
	Error   string `json:"error"`

	Border     string `json:"border"`
	StatusBar  string `json:"status_bar"`
	Title      string `json:"title"`
	PageNumber string `json:"page_number"`
	Spinner    string `json:"spinner"`

	Bold string `json:"bold"`
	Dim  string `json:"dim"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Dark    *bool       `json:"dark"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and layers it over base.
// Missing palette fields, name and dark flag keep the base values.
func LoadFile(path string, base *Theme) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	if base == nil {
		base = &Theme{Name: "light", Palette: DefaultPalette()}
	}
	out := &Theme{
		Name:    base.Name,
		Dark:    base.Dark,
		Palette: convertPalette(jt.Palette, base.Palette),
	}
	if jt.Name != "" {
		out.Name = jt.Name
	}
	if jt.Dark != nil {
		out.Dark = *jt.Dark
	}
	return out, nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	// Field names match between the two structs.
	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(jsonVal)))
		}
	}

	return p
}
