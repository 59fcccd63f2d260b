package pom

import (
	"strings"

	"github.com/itsatony/go-pom/internal"
)

// markdownRenderer maps depth to heading level instead of indentation,
// since indented Markdown turns into code blocks.
type markdownRenderer struct {
	sb strings.Builder
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{}
}

func (r *markdownRenderer) Enter(v internal.Visit) error {
	if err := checkNode(FormatMarkdown, v, internal.CheckUTF8); err != nil {
		return err
	}

	if r.sb.Len() > 0 {
		r.sb.WriteByte('\n')
	}

	level := MarkdownBaseLevel + v.Depth
	if level > MarkdownMaxLevel {
		level = MarkdownMaxLevel
	}
	r.sb.WriteString(strings.Repeat(MarkdownHeadingMark, level))
	r.sb.WriteString(" ")
	r.sb.WriteString(v.Number())
	r.sb.WriteString(NumberTerminator)
	// A heading is a single line.
	r.sb.WriteString(internal.EscapeMarkdown(strings.ReplaceAll(v.Node.Title, "\n", " ")))
	r.sb.WriteByte('\n')

	if v.Node.Body != "" {
		r.sb.WriteByte('\n')
		r.sb.WriteString(internal.EscapeMarkdown(v.Node.Body))
		r.sb.WriteByte('\n')
	}

	if len(v.Node.Bullets) > 0 {
		r.sb.WriteByte('\n')
		for _, item := range v.Node.Bullets {
			r.sb.WriteString(MarkdownBulletPrefix)
			escaped := internal.EscapeMarkdown(item)
			r.sb.WriteString(strings.ReplaceAll(escaped, "\n", "\n"+MarkdownBulletIndent))
			r.sb.WriteByte('\n')
		}
	}
	return nil
}

func (r *markdownRenderer) Leave(internal.Visit) error {
	return nil
}

func (r *markdownRenderer) finish() string {
	return strings.TrimSuffix(r.sb.String(), "\n")
}
