package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	bannererrors "github.com/bannerforge/bannerforge/pkg/errors"
)

// Built-in templates: named partial styles used to seed a full Style.
// Field values mirror the shipped catalog; user template files shadow
// entries of the same name.
var builtinTemplates = map[string]Overrides{
	"corporate": {
		Font:      ptr("standard"),
		Border:    ptr(BorderDouble),
		Color:     ptr("blue"),
		Padding:   ptr(2),
		Alignment: ptr(AlignCenter),
	},
	"retro": {
		Font:    ptr("3-d"),
		Border:  ptr(BorderStar),
		Color:   ptr("gradient:magenta-cyan"),
		Shadow:  ptr(true),
		Padding: ptr(1),
	},
	"minimal": {
		Font:    ptr("small"),
		Border:  ptr(BorderNone),
		Color:   ptr("white"),
		Compact: ptr(true),
	},
	"fancy": {
		Font:    ptr("slant"),
		Border:  ptr(BorderRounded),
		Color:   ptr("gradient:blue-cyan"),
		Padding: ptr(2),
		Shadow:  ptr(true),
	},
	"terminal": {
		Font:    ptr("digital"),
		Border:  ptr(BorderSingle),
		Color:   ptr("green"),
		Padding: ptr(1),
		Width:   ptr(100),
	},
	"banner": {
		Font:      ptr("banner"),
		Border:    ptr(BorderDouble),
		Color:     ptr("yellow"),
		Padding:   ptr(1),
		Alignment: ptr(AlignCenter),
	},
	"matrix": {
		Font:            ptr("digital"),
		Color:           ptr("bright_green"),
		BackgroundColor: ptr("black"),
		Border:          ptr(BorderNone),
		Shadow:          ptr(true),
	},
	"neon": {
		Font:        ptr("big"),
		Color:       ptr("gradient:magenta-cyan"),
		Border:      ptr(BorderRounded),
		Shadow:      ptr(true),
		ShadowColor: ptr("bright_magenta"),
	},
}

// templateDoc is the YAML schema for a user template file: a flat map of
// optional style fields. Enum fields arrive as strings and go through the
// same validating factories as CLI input.
type templateDoc struct {
	Font            *string `yaml:"font,omitempty" validate:"omitempty,fontname"`
	Color           *string `yaml:"color,omitempty"`
	BackgroundColor *string `yaml:"background_color,omitempty"`
	Border          *string `yaml:"border,omitempty" validate:"omitempty,oneof=none single double rounded bold ascii star hash"`
	BorderColor     *string `yaml:"border_color,omitempty"`
	Padding         *int    `yaml:"padding,omitempty" validate:"omitempty,min=0"`
	Width           *int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=1000"`
	Alignment       *string `yaml:"alignment,omitempty" validate:"omitempty,oneof=left center right"`
	Compact         *bool   `yaml:"compact,omitempty"`
	Shadow          *bool   `yaml:"shadow,omitempty"`
	ShadowColor     *string `yaml:"shadow_color,omitempty"`
	Bold            *bool   `yaml:"bold,omitempty"`
	Italic          *bool   `yaml:"italic,omitempty"`
	Underline       *bool   `yaml:"underline,omitempty"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fontNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	yamlLineRegex   = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("fontname", func(fl validator.FieldLevel) bool {
			return fontNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// TemplateDir is the directory scanned for user template files.
func TemplateDir() string {
	return filepath.Join(xdg.ConfigHome, "bannerforge", "templates")
}

// ResolveTemplate constructs a Style from the named template: defaults plus
// the template's stored field subset. A user file shadows a built-in of the
// same name. Unknown names yield a NotFoundError.
func ResolveTemplate(name string) (Style, error) {
	overrides, err := TemplateOverrides(name)
	if err != nil {
		return Style{}, err
	}
	return New().Apply(overrides).Normalize(), nil
}

// TemplateOverrides returns the raw field subset stored for a template,
// which is what catalog listings display.
func TemplateOverrides(name string) (Overrides, error) {
	path := filepath.Join(TemplateDir(), name+".yaml")
	if _, statErr := os.Stat(path); statErr == nil {
		return loadTemplateFile(path)
	}

	if overrides, ok := builtinTemplates[name]; ok {
		return overrides, nil
	}
	return Overrides{}, bannererrors.NewNotFoundError("template", name, nil)
}

// Templates lists all template names, built-in and user-defined, sorted.
func Templates() []string {
	seen := make(map[string]struct{}, len(builtinTemplates))
	for name := range builtinTemplates {
		seen[name] = struct{}{}
	}

	if entries, err := os.ReadDir(TemplateDir()); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if name, ok := strings.CutSuffix(entry.Name(), ".yaml"); ok {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadTemplateFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, bannererrors.NewParseError(path, 0, err)
	}

	var doc templateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Overrides{}, bannererrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return Overrides{}, convertValidationError(err)
	}

	return doc.overrides()
}

func (d templateDoc) overrides() (Overrides, error) {
	o := Overrides{
		Font:            d.Font,
		Color:           d.Color,
		BackgroundColor: d.BackgroundColor,
		BorderColor:     d.BorderColor,
		Padding:         d.Padding,
		Width:           d.Width,
		Compact:         d.Compact,
		Shadow:          d.Shadow,
		ShadowColor:     d.ShadowColor,
		Bold:            d.Bold,
		Italic:          d.Italic,
		Underline:       d.Underline,
	}

	if d.Border != nil {
		kind, err := ParseBorderKind(*d.Border)
		if err != nil {
			return Overrides{}, err
		}
		o.Border = &kind
	}
	if d.Alignment != nil {
		align, err := ParseAlignment(*d.Alignment)
		if err != nil {
			return Overrides{}, err
		}
		o.Alignment = &align
	}

	return o, nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		field := strings.ToLower(first.Field())
		return bannererrors.NewValidationError(field, fmt.Sprintf("failed %q constraint", first.Tag()), err)
	}
	return bannererrors.NewValidationError("", err.Error(), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
