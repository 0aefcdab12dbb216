package templates

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "site.yaml.tmpl",
			wantFilename: "site.yaml",
			wantIsTmpl:   true,
		},
		{
			name:         "regular file unchanged",
			filename:     "sidebar.css",
			wantFilename: "sidebar.css",
			wantIsTmpl:   false,
		},
		{
			name:         "nested tmpl file",
			filename:     "partials/nav.html.tmpl",
			wantFilename: "partials/nav.html",
			wantIsTmpl:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{
		Name: "docs",
	}

	tests := []struct {
		name       string
		content    string
		isTemplate bool
		want       string
	}{
		{
			name:       "non-template content unchanged",
			content:    "title: x",
			isTemplate: false,
			want:       "title: x",
		},
		{
			name:       "template with Name placeholder",
			content:    "title: {{.Name}}",
			isTemplate: true,
			want:       "title: docs",
		},
		{
			name:       "mustache tags left alone",
			content:    "<h1>{{title}}</h1>",
			isTemplate: true,
			want:       "<h1>{{title}}</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProcessContent([]byte(tt.content), tt.isTemplate, data)
			if string(got) != tt.want {
				t.Errorf("ProcessContent(%q) = %q, want %q", tt.content, string(got), tt.want)
			}
		})
	}
}

func TestDeriveSiteName(t *testing.T) {
	tests := []struct {
		name    string
		siteDir string
		want    string
	}{
		{name: "normal directory name", siteDir: "/home/user/docs", want: "docs"},
		{name: "current directory", siteDir: ".", want: "mysite"},
		{name: "root directory", siteDir: "/", want: "mysite"},
		{name: "empty directory", siteDir: "", want: "mysite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveSiteName(tt.siteDir); got != tt.want {
				t.Errorf("DeriveSiteName(%q) = %q, want %q", tt.siteDir, got, tt.want)
			}
		})
	}
}

func TestGetTemplate(t *testing.T) {
	if _, err := GetTemplate("sidebar"); err != nil {
		t.Fatalf("GetTemplate(sidebar) error = %v", err)
	}

	_, err := GetTemplate("invalid")
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("GetTemplate(invalid) error = %v, want %v", err, ErrInvalidTemplate)
	}
}

func TestSidebarTemplate_Content(t *testing.T) {
	templateFS, err := GetTemplate("sidebar")
	if err != nil {
		t.Fatalf("GetTemplate('sidebar') error = %v", err)
	}

	for _, name := range []string{"site.yaml.tmpl", "sidebar.md", "sidebar.css", "header.html"} {
		if _, err := fs.ReadFile(templateFS, name); err != nil {
			t.Errorf("sidebar template should include %s: %v", name, err)
		}
	}

	config, err := fs.ReadFile(templateFS, "site.yaml.tmpl")
	if err != nil {
		t.Fatalf("Failed to read site.yaml.tmpl: %v", err)
	}
	if !strings.Contains(string(config), "{{.Name}}") {
		t.Error("site.yaml.tmpl should reference the site name")
	}
}
