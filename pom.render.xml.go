package pom

import (
	"strings"

	"github.com/itsatony/go-pom/internal"
)

// xmlRenderer emits:
//
//	<prompt>
//	  <section number="1">
//	    <title>...</title>
//	    <body>...</body>
//	    <bullets>
//	      <bullet>...</bullet>
//	    </bullets>
//	    <section number="1.1">...</section>
//	  </section>
//	</prompt>
type xmlRenderer struct {
	sb     strings.Builder
	indent string
	empty  bool
}

func newXMLRenderer(config *modelConfig, empty bool) *xmlRenderer {
	r := &xmlRenderer{indent: config.indent, empty: empty}
	if config.xmlDeclaration {
		r.sb.WriteString(XMLDeclaration)
		r.sb.WriteByte('\n')
	}
	if empty {
		r.sb.WriteString(XMLEmptyRootElem)
	} else {
		r.openTag(0, XMLTagRoot)
		r.sb.WriteByte('\n')
	}
	return r
}

func (r *xmlRenderer) Enter(v internal.Visit) error {
	if err := checkNode(FormatXML, v, internal.CheckXML); err != nil {
		return err
	}

	level := v.Depth + 1
	r.writeIndent(level)
	r.sb.WriteString("<" + XMLTagSection + " " + XMLAttrNumber + `="`)
	r.sb.WriteString(v.Number())
	r.sb.WriteString(`">` + "\n")

	r.element(level+1, XMLTagTitle, v.Node.Title)
	if v.Node.Body != "" {
		r.element(level+1, XMLTagBody, v.Node.Body)
	}
	if len(v.Node.Bullets) > 0 {
		r.openTag(level+1, XMLTagBullets)
		r.sb.WriteByte('\n')
		for _, item := range v.Node.Bullets {
			r.element(level+2, XMLTagBullet, item)
		}
		r.closeTag(level+1, XMLTagBullets)
	}
	return nil
}

func (r *xmlRenderer) Leave(v internal.Visit) error {
	r.closeTag(v.Depth+1, XMLTagSection)
	return nil
}

func (r *xmlRenderer) finish() string {
	if !r.empty {
		r.sb.WriteString("</" + XMLTagRoot + ">")
	}
	return r.sb.String()
}

// element writes <tag>escaped text</tag> on its own line. The text itself
// is never re-indented, so embedded newlines survive a parse unchanged.
func (r *xmlRenderer) element(level int, tag, text string) {
	r.openTag(level, tag)
	r.sb.WriteString(internal.EscapeXML(text))
	r.sb.WriteString("</" + tag + ">\n")
}

func (r *xmlRenderer) openTag(level int, tag string) {
	r.writeIndent(level)
	r.sb.WriteString("<" + tag + ">")
}

func (r *xmlRenderer) closeTag(level int, tag string) {
	r.writeIndent(level)
	r.sb.WriteString("</" + tag + ">\n")
}

func (r *xmlRenderer) writeIndent(level int) {
	for i := 0; i < level; i++ {
		r.sb.WriteString(r.indent)
	}
}
