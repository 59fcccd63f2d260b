// Package pom provides a Prompt Object Model: an ordered tree of titled
// sections, built incrementally and rendered deterministically into
// structured text for LLM prompts.
//
// # Basic Usage
//
// Build a tree with AddSection and AddSubsection, then render it:
//
//	doc := pom.New()
//	objective, _ := doc.AddSection("Objective",
//	    pom.WithBody("You are an AI assistant built to help users draft professional emails."))
//	objective.AddBullets(
//	    "Listen carefully to the user's requirements",
//	    "Draft concise, clear, and professional emails",
//	)
//	details, _ := objective.AddSubsection("Implementation Details")
//	details.AddBullets("Use proper salutations", "Keep paragraphs short")
//
//	xml, err := doc.RenderXML()
//
// # Numbering
//
// Sections are numbered by position when rendered: top-level sections are
// "1", "2", ...; the children of section "2" are "2.1", "2.2", ... Numbers
// are never stored, so adding sections simply renumbers on the next render.
//
// # Formats
//
// XML is the reference format. Markdown and plain text share its numbering
// and escaping rules. The format is always chosen by the caller:
//
//	out, err := doc.Render(pom.FormatMarkdown)
//
// Models can also be exported and loaded as JSON, YAML or HJSON documents
// with ToJSON, ToYAML, FromJSON, FromYAML and FromHJSON.
//
// # Error Handling
//
// Malformed input (an empty title, an unknown format, an invalid document)
// returns an error matching ErrInvalidArgument. Rendering only fails when
// text cannot be represented in the target format (invalid UTF-8, or a
// control character XML forbids); such errors match ErrRender:
//
//	if _, err := doc.AddSection(""); pom.IsInvalidArgument(err) {
//	    // handle
//	}
//
// # Configuration
//
// Customize the model with functional options:
//
//	doc := pom.New(
//	    pom.WithIndent("\t"),
//	    pom.WithXMLDeclaration(false),
//	    pom.WithLogger(logger),
//	)
package pom

// Version is the library version.
const Version = "0.1.6"
