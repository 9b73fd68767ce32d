package usecase

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/types"
	"golang.org/x/net/html"
)

const (
	DefaultContainerSelector = "div.container"
	DefaultSectionSelector   = "section.readme"

	copyCommandMarker = "function copyCommand"
)

// DocumentUpdater replaces the listing sections of an index document
type DocumentUpdater struct {
	containerSelector string
	sectionSelector   string
}

// NewDocumentUpdater creates a DocumentUpdater using the default selectors
func NewDocumentUpdater() *DocumentUpdater {
	return &DocumentUpdater{
		containerSelector: DefaultContainerSelector,
		sectionSelector:   DefaultSectionSelector,
	}
}

// Update parses doc, replaces every listing section in the container with
// fragments (in order) and makes sure the clipboard script is present once.
// The input is not modified; the whole new document is returned.
func (u *DocumentUpdater) Update(doc []byte, fragments []string) ([]byte, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse document", goerr.T(types.ErrTagParse))
	}

	container := d.Find(u.containerSelector)
	switch container.Length() {
	case 1:
	case 0:
		return nil, goerr.New("container element not found",
			goerr.V("selector", u.containerSelector),
			goerr.T(types.ErrTagParse),
		)
	default:
		return nil, goerr.New("multiple container elements found",
			goerr.V("selector", u.containerSelector),
			goerr.V("count", container.Length()),
			goerr.T(types.ErrTagParse),
		)
	}

	sections := container.Find(u.sectionSelector)
	sections.Each(func(_ int, s *goquery.Selection) {
		removeTrailingWhitespace(s.Get(0))
	})
	sections.Remove()

	for _, fragment := range fragments {
		container.AppendHtml(fragment + "\n")
	}

	if !hasCopyCommand(d) {
		d.Find("body").AppendHtml(copyCommandScript)
	}

	out, err := d.Html()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render document", goerr.T(types.ErrTagParse))
	}

	return []byte(out), nil
}

func hasCopyCommand(d *goquery.Document) bool {
	found := false
	d.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		found = strings.Contains(s.Text(), copyCommandMarker)
		return !found
	})
	return found
}

// removeTrailingWhitespace drops the whitespace-only text node after n so
// that regenerated sections do not accumulate blank lines across runs.
func removeTrailingWhitespace(n *html.Node) {
	next := n.NextSibling
	if next == nil || next.Type != html.TextNode || strings.TrimSpace(next.Data) != "" {
		return
	}
	n.Parent.RemoveChild(next)
}
