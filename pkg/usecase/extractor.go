package usecase

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
)

// DefaultFallbackDescription is used for scripts without any comment
const DefaultFallbackDescription = "A useful PowerShell script for Intune management"

var (
	powershellBlockComment = regexp.MustCompile(`(?s)<#(.*?)#>`)
	powershellLineComment  = regexp.MustCompile(`#\s*(.+)`)
)

// CommentExtractor extracts a description from the first block comment,
// then the first line comment, then falls back to a fixed string.
type CommentExtractor struct {
	block    *regexp.Regexp
	line     *regexp.Regexp
	fallback string
}

var _ interfaces.DescriptionExtractor = (*CommentExtractor)(nil)

// NewCommentExtractor creates an extractor for arbitrary comment syntax.
// Both patterns must have exactly one capture group holding the description.
func NewCommentExtractor(block, line *regexp.Regexp, fallback string) *CommentExtractor {
	return &CommentExtractor{
		block:    block,
		line:     line,
		fallback: fallback,
	}
}

// NewPowerShellExtractor creates an extractor for "<# ... #>" and "#" comments.
// An empty fallback selects DefaultFallbackDescription.
func NewPowerShellExtractor(fallback string) *CommentExtractor {
	if fallback == "" {
		fallback = DefaultFallbackDescription
	}
	return NewCommentExtractor(powershellBlockComment, powershellLineComment, fallback)
}

// Extract returns the description of a script
func (x *CommentExtractor) Extract(content string) string {
	if x.block != nil {
		if m := x.block.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if x.line != nil {
		if m := x.line.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return x.fallback
}
