package assets

import (
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
)

// PageData carries the values available to every page template.
type PageData struct {
	Title    string
	SiteName string
	Services []string
}

// ErrorData fills the standalone error page.
type ErrorData struct {
	Status  int
	Title   string
	Message string
}

// Each page gets its own template set because every page defines the
// same "content" block over the shared layout.
var (
	indexTmpl   = mustPage("index.html")
	contactTmpl = mustPage("contact.html", "contact_form.html")
	formTmpl    = mustParse("contact_form.html")
	errorTmpl   = mustParse("error.html")
)

func mustPage(files ...string) *template.Template {
	paths := make([]string, 0, len(files)+1)
	paths = append(paths, "templates/base.html")
	for _, f := range files {
		paths = append(paths, "templates/"+f)
	}
	return template.Must(template.New("").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, paths...))
}

func mustParse(file string) *template.Template {
	return template.Must(template.New("").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/"+file))
}

// RenderIndex writes the home page.
func RenderIndex(w io.Writer, data PageData) error {
	return indexTmpl.ExecuteTemplate(w, "base.html", data)
}

// RenderContact writes the contact page.
func RenderContact(w io.Writer, data PageData) error {
	return contactTmpl.ExecuteTemplate(w, "base.html", data)
}

// RenderContactForm writes only the contact form fragment, used by the
// SSE element-patch endpoint.
func RenderContactForm(w io.Writer, data PageData) error {
	return formTmpl.ExecuteTemplate(w, "contact_form", data)
}

// RenderError writes the standalone error page.
func RenderError(w io.Writer, data ErrorData) error {
	return errorTmpl.ExecuteTemplate(w, "error.html", data)
}
