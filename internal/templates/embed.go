package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed all:sidebar
var sidebarFS embed.FS

var validTemplates = []string{"sidebar"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "sidebar":
		return fs.Sub(sidebarFS, "sidebar")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

type TemplateData struct {
	Name string
}

// ProcessFilename strips the .tmpl suffix and reports whether it was present.
func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Name}}", data.Name)

	return []byte(result)
}

func DeriveSiteName(siteDir string) string {
	base := filepath.Base(siteDir)
	if base == "." || base == "/" || base == "" {
		return "mysite"
	}
	return base
}
