package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"rantoo/internal/domains/converter/model/dto"
	"rantoo/ui"

	"github.com/rs/zerolog/log"
)

type PageName string

const (
	baseTemplatePath     = "gohtml/base.gohtml"
	partialsTemplateGlob = "gohtml/partials/*.gohtml"
	pagesTemplateGlob    = "gohtml/pages/*.gohtml"
)

const (
	PageIndex PageName = "index"
)

// Data is everything the converter page renders. Result and Error are
// mutually exclusive.
type Data struct {
	AppName    string
	Direction  string
	InputValue string
	Timezone   string
	Result     *dto.ConversionResponse
	Error      string
	Formats    []string
	Aliases    []string
}

type Manager struct {
	PageCache map[string]*template.Template
}

func NewManager() (*Manager, error) {
	pageCache, err := newPageCache(ui.Files)
	if err != nil {
		return nil, err
	}

	return &Manager{
		PageCache: pageCache,
	}, nil
}

// New is NewManager for the dependency graph. Templates are embedded, so a
// parse failure is a build defect and stops the process.
func New() *Manager {
	manager, err := NewManager()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}

	return manager
}

func newPageCache(files fs.FS) (map[string]*template.Template, error) {
	filePaths, err := fs.Glob(files, pagesTemplateGlob)
	if err != nil {
		return nil, fmt.Errorf("listing page templates: %w", err)
	}

	result := make(map[string]*template.Template, len(filePaths))
	for _, filePath := range filePaths {
		tmpl, err := template.New("base").Funcs(tmplFuncs).ParseFS(files, baseTemplatePath, partialsTemplateGlob, filePath)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}

		result[cacheKeyFromPath(filePath)] = tmpl
	}

	return result, nil
}

func cacheKeyFromPath(filePath string) string {
	return strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
}

// RenderPage executes the page into a buffer so a template error never leaves
// a half-written response.
func (m *Manager) RenderPage(pageName PageName, data *Data) (*bytes.Buffer, error) {
	tmpl := m.PageCache[string(pageName)]
	if tmpl == nil {
		return nil, fmt.Errorf("page template %q was not found in cache", pageName)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", pageName, err)
	}

	return buf, nil
}
