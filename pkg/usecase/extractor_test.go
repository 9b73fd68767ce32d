package usecase_test

import (
	"regexp"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psindex/pkg/usecase"
)

func TestPowerShellExtractor_Extract(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "block comment",
			content: "<#\n  Removes stale user profiles.\n#>\nGet-ChildItem\n",
			want:    "Removes stale user profiles.",
		},
		{
			name:    "block comment wins over earlier line comment",
			content: "# requires admin\n<# Deploys the app #>\n",
			want:    "Deploys the app",
		},
		{
			name:    "first block comment only",
			content: "<# first #>\n<# second #>\n",
			want:    "first",
		},
		{
			name:    "multi-line block keeps inner lines",
			content: "<#\n.SYNOPSIS\n  Backs up logs\n#>",
			want:    ".SYNOPSIS\n  Backs up logs",
		},
		{
			name:    "line comment",
			content: "Set-StrictMode -Version Latest\n#   Cleans temp files   \n# other\n",
			want:    "Cleans temp files",
		},
		{
			name:    "line comment marker followed by blank line",
			content: "#\n   Next line text\n",
			want:    "Next line text",
		},
		{
			name:    "unterminated block falls back to line comment",
			content: "<# never closed\n",
			want:    "never closed",
		},
		{
			name:    "no comment",
			content: "Write-Host 'hello'\n",
			want:    usecase.DefaultFallbackDescription,
		},
		{
			name:    "empty script",
			content: "",
			want:    usecase.DefaultFallbackDescription,
		},
	}

	x := usecase.NewPowerShellExtractor("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, x.Extract(tt.content)).Equal(tt.want)
		})
	}
}

func TestPowerShellExtractor_Deterministic(t *testing.T) {
	x := usecase.NewPowerShellExtractor("")
	content := "# one\n<# two #>\n"
	first := x.Extract(content)
	for i := 0; i < 10; i++ {
		gt.Value(t, x.Extract(content)).Equal(first)
	}
}

func TestPowerShellExtractor_CustomFallback(t *testing.T) {
	x := usecase.NewPowerShellExtractor("generic script description")
	gt.Value(t, x.Extract("Get-Date")).Equal("generic script description")
}

func TestCommentExtractor_OtherSyntax(t *testing.T) {
	x := usecase.NewCommentExtractor(
		regexp.MustCompile(`(?s)/\*(.*?)\*/`),
		regexp.MustCompile(`//\s*(.+)`),
		"none",
	)

	gt.Value(t, x.Extract("/* block */ // line")).Equal("block")
	gt.Value(t, x.Extract("code // line")).Equal("line")
	gt.Value(t, x.Extract("code")).Equal("none")
}
