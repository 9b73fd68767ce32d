package usecase

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/section.html
var sectionTemplate string

//go:embed templates/copy_command.html
var copyCommandScript string

var sectionTmpl = template.Must(template.New("section").Parse(sectionTemplate))

// FragmentBuilder renders one listing section per script
type FragmentBuilder struct {
	tmpl  *template.Template
	title cases.Caser
}

// NewFragmentBuilder creates a FragmentBuilder with the built-in section template
func NewFragmentBuilder() *FragmentBuilder {
	return &FragmentBuilder{
		tmpl:  sectionTmpl,
		title: cases.Title(language.English),
	}
}

// Heading converts a script name into a heading ("remove-profile" -> "Remove Profile").
// Hyphens become spaces and every run of letters is title-cased on its own, so
// letters after digits, underscores or dots start a new word ("Win10fix" -> "Win10Fix").
func (b *FragmentBuilder) Heading(name string) string {
	var sb strings.Builder
	rest := strings.ReplaceAll(name, "-", " ")
	for rest != "" {
		n := strings.IndexFunc(rest, isNotLetter)
		if n < 0 {
			n = len(rest)
		}
		sb.WriteString(b.title.String(rest[:n]))
		rest = rest[n:]

		m := strings.IndexFunc(rest, unicode.IsLetter)
		if m < 0 {
			m = len(rest)
		}
		sb.WriteString(rest[:m])
		rest = rest[m:]
	}
	return sb.String()
}

func isNotLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

// Command returns the one-line command that downloads and runs the script
func Command(rawURL string) string {
	return `iwr "` + rawURL + `" | iex`
}

// Build renders the section markup for entry. Entry fields are escaped by html/template.
func (b *FragmentBuilder) Build(entry *model.ScriptEntry) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, map[string]string{
		"Name":        entry.Name,
		"Heading":     b.Heading(entry.Name),
		"Description": entry.Description,
		"Command":     Command(entry.RawURL),
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render section", goerr.V("name", entry.Name))
	}

	return strings.TrimSpace(buf.String()), nil
}
