package models

import (
	"strings"
	"testing"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
)

func TestThemeValidate(t *testing.T) {
	valid := Theme{Slug: "urban-vogue", Name: "Urban Vogue"}

	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Theme) {}, wantErr: false},
		{name: "valid_with_numbers", mutate: func(th *Theme) { th.Slug = "theme-2" }, wantErr: false},
		{name: "empty_slug", mutate: func(th *Theme) { th.Slug = "" }, wantErr: true},
		{name: "uppercase_slug", mutate: func(th *Theme) { th.Slug = "Urban-Vogue" }, wantErr: true},
		{name: "slug_leading_hyphen", mutate: func(th *Theme) { th.Slug = "-urban" }, wantErr: true},
		{name: "slug_with_spaces", mutate: func(th *Theme) { th.Slug = "urban vogue" }, wantErr: true},
		{name: "empty_name", mutate: func(th *Theme) { th.Name = "" }, wantErr: true},
		{name: "name_whitespace_padding", mutate: func(th *Theme) { th.Name = " Urban Vogue " }, wantErr: true},
		{name: "name_too_long", mutate: func(th *Theme) { th.Name = strings.Repeat("a", 101) }, wantErr: true},
		{name: "name_invalid_chars", mutate: func(th *Theme) { th.Name = "Urban <Vogue>" }, wantErr: true},
		{name: "name_with_parens", mutate: func(th *Theme) { th.Name = "Urban Vogue (Dark)" }, wantErr: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			theme := valid
			test.mutate(&theme)
			err := theme.Validate()
			if test.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !test.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestThemeFromDB(t *testing.T) {
	row := dbgen.Theme{
		ID:       "theme-1",
		Slug:     "urban-vogue",
		Name:     "Urban Vogue",
		IsActive: true,
		Version:  "1.0",
		Config:   `{"colors":{"primary":"#111111"},"spacing":{"md":"1rem"}}`,
	}

	theme, err := ThemeFromDB(row)
	if err != nil {
		t.Fatalf("ThemeFromDB() error: %v", err)
	}
	if theme.Config.Colors["primary"] != "#111111" {
		t.Fatalf("config not decoded: %+v", theme.Config)
	}
}

func TestThemeFromDBInvalidConfig(t *testing.T) {
	row := dbgen.Theme{ID: "theme-1", Config: `{"colors":`}
	if _, err := ThemeFromDB(row); err == nil {
		t.Fatal("ThemeFromDB() = nil error for corrupt config")
	}
}

func TestSummaryOmitsConfig(t *testing.T) {
	theme := Theme{
		ID:        "theme-1",
		Slug:      "urban-vogue",
		Name:      "Urban Vogue",
		IsActive:  true,
		IsDefault: true,
		Config:    ThemeConfig{Colors: map[string]string{"primary": "#111111"}},
	}

	summary := theme.Summary()
	if summary.ID != theme.ID || summary.Slug != theme.Slug || !summary.IsDefault {
		t.Fatalf("Summary() = %+v", summary)
	}
}
