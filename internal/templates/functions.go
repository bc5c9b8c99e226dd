package templates

import (
	"html/template"
	"strings"
)

var tmplFuncs = template.FuncMap{
	"join": strings.Join,
}
