package pom

import (
	"strings"

	"github.com/itsatony/go-pom/internal"
)

// textRenderer emits numbered headings with body and bullets indented one
// level below them. Plain text has no reserved characters.
type textRenderer struct {
	sb     strings.Builder
	indent string
}

func newTextRenderer(config *modelConfig) *textRenderer {
	return &textRenderer{indent: config.indent}
}

func (r *textRenderer) Enter(v internal.Visit) error {
	if err := checkNode(FormatText, v, internal.CheckUTF8); err != nil {
		return err
	}

	if v.Depth == 0 && r.sb.Len() > 0 {
		r.sb.WriteByte('\n')
	}

	r.writeLines(v.Depth, "", v.Number()+NumberTerminator+v.Node.Title)

	if v.Node.Body != "" {
		r.writeLines(v.Depth+1, "", v.Node.Body)
	}
	for _, item := range v.Node.Bullets {
		r.writeLines(v.Depth+1, TextBulletPrefix, item)
	}
	return nil
}

func (r *textRenderer) Leave(internal.Visit) error {
	return nil
}

func (r *textRenderer) finish() string {
	return strings.TrimSuffix(r.sb.String(), "\n")
}

// writeLines writes text at level, prefixing the first line with prefix
// and aligning continuation lines under it.
func (r *textRenderer) writeLines(level int, prefix, text string) {
	pad := strings.Repeat(r.indent, level)
	cont := pad + strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(text, "\n") {
		switch {
		case i == 0:
			r.sb.WriteString(pad + prefix)
		case line != "":
			r.sb.WriteString(cont)
		}
		r.sb.WriteString(line)
		r.sb.WriteByte('\n')
	}
}
