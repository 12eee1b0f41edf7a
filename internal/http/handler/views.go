package handler

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"radar/internal/model"
)

//go:embed views/*.html
var viewFiles embed.FS

// NewViews returns the template engine for the dashboard pages.
// Pages are rendered inside the "layout" template.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewFiles, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// navSection is one titled group of sidebar links.
type navSection struct {
	Label string
	Items []model.NavItem
}

func groupNav(items []model.NavItem) []navSection {
	sections := make([]navSection, 0, len(model.NavGroups()))
	for _, g := range model.NavGroups() {
		s := navSection{Label: g.Label()}
		for _, it := range items {
			if it.Group == g {
				s.Items = append(s.Items, it)
			}
		}
		if len(s.Items) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}
