package pom

import (
	"github.com/itsatony/go-pom/internal"
	"go.uber.org/zap"
)

// Section is a handle to one node of a PromptObjectModel. Sections and
// subsections share this type; a subsection is simply a section owned by
// another section. Mutations through a handle are visible in every later
// render of the owning model.
//
// The title is fixed at creation. Numbering is not a property of the
// section: it is derived from position each time the model is rendered.
type Section struct {
	model *PromptObjectModel
	id    internal.NodeID
}

func (s *Section) node() *internal.Node {
	return s.model.tree.Node(s.id)
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.node().Title
}

// Body returns the section body text, or "" if none was set.
func (s *Section) Body() string {
	return s.node().Body
}

// Bullets returns a copy of the bullet items in insertion order.
func (s *Section) Bullets() []string {
	bullets := s.node().Bullets
	if len(bullets) == 0 {
		return nil
	}
	out := make([]string, len(bullets))
	copy(out, bullets)
	return out
}

// Subsections returns handles to the child sections in insertion order.
func (s *Section) Subsections() []*Section {
	return s.model.handles(s.node().Children)
}

// HasContent reports whether the section has a body, bullets or subsections.
func (s *Section) HasContent() bool {
	n := s.node()
	return n.Body != "" || len(n.Bullets) > 0 || len(n.Children) > 0
}

// AddSubsection appends a child section and returns its handle.
// The title must not be empty or blank.
func (s *Section) AddSubsection(title string, opts ...SectionOption) (*Section, error) {
	return s.model.addSection(s.id, title, opts)
}

// MustAddSubsection is like AddSubsection but panics on error.
func (s *Section) MustAddSubsection(title string, opts ...SectionOption) *Section {
	sub, err := s.AddSubsection(title, opts...)
	if err != nil {
		panic(err)
	}
	return sub
}

// AddBullets appends items verbatim, in order. Calling it with no items is
// a no-op.
func (s *Section) AddBullets(items ...string) {
	if len(items) == 0 {
		return
	}
	n := s.node()
	n.Bullets = append(n.Bullets, items...)
	s.model.logger.Debug(LogMsgBulletsAdded,
		zap.String(LogFieldTitle, n.Title),
		zap.Int(LogFieldBullets, len(items)))
}

// SetBody replaces the body text. An empty string clears it.
func (s *Section) SetBody(text string) {
	s.node().Body = text
}

// AppendBody appends text to the body verbatim. Separators such as
// newlines are the caller's choice.
func (s *Section) AppendBody(text string) {
	s.node().Body += text
}

// FindSection returns the first descendant, in depth-first pre-order, whose
// title equals title. The section itself is not considered.
func (s *Section) FindSection(title string) (*Section, bool) {
	id, ok := internal.FindFirst(s.model.tree, s.node().Children, title)
	if !ok {
		return nil, false
	}
	return &Section{model: s.model, id: id}, true
}

// AppendModel deep-copies the top-level sections of other and appends them
// as subsections of s, in order. other is left untouched and shares no
// state with s afterwards.
func (s *Section) AppendModel(other *PromptObjectModel) error {
	if other == nil {
		return NewInvalidArgumentError(FieldModel, ErrMsgNilModel)
	}
	if other == s.model {
		return NewInvalidArgumentError(FieldModel, ErrMsgSelfAppend)
	}

	roots := other.tree.Roots()
	for _, root := range roots {
		if _, ok := s.model.tree.CopySubtree(other.tree, root, s.id); !ok {
			return NewInvalidArgumentError(FieldSection, ErrMsgUnknownSection)
		}
	}

	s.model.logger.Debug(LogMsgModelAppended,
		zap.String(LogFieldTitle, s.Title()),
		zap.Int(LogFieldSections, len(roots)))
	return nil
}
