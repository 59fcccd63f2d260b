package pom

import (
	"strings"

	"github.com/itsatony/go-pom/internal"
	"go.uber.org/zap"
)

// PromptObjectModel is the root container of a prompt tree. It owns every
// section exclusively; sections are only created through AddSection and
// AddSubsection and live until the model is discarded.
//
// A model is not safe for concurrent mutation. Concurrent renders are fine
// as long as no goroutine is mutating the model at the same time.
type PromptObjectModel struct {
	tree   *internal.Tree
	config *modelConfig
	logger *zap.Logger
}

// New creates an empty model with the given options.
func New(opts ...Option) *PromptObjectModel {
	config := defaultModelConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgModelCreated)

	return &PromptObjectModel{
		tree:   internal.NewTree(logger),
		config: config,
		logger: logger,
	}
}

// AddSection appends a new top-level section and returns its handle.
// The title must not be empty or blank.
func (m *PromptObjectModel) AddSection(title string, opts ...SectionOption) (*Section, error) {
	return m.addSection(internal.NoParent, title, opts)
}

// MustAddSection is like AddSection but panics on error.
func (m *PromptObjectModel) MustAddSection(title string, opts ...SectionOption) *Section {
	s, err := m.AddSection(title, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (m *PromptObjectModel) addSection(parent internal.NodeID, title string, opts []SectionOption) (*Section, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewEmptyTitleError(title)
	}

	cfg := &sectionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	id, ok := m.tree.Add(parent, title, cfg.body)
	if !ok {
		return nil, NewInvalidArgumentError(FieldSection, ErrMsgUnknownSection)
	}
	if len(cfg.bullets) > 0 {
		m.tree.Node(id).Bullets = cfg.bullets
	}

	m.logger.Debug(LogMsgSectionAdded,
		zap.String(LogFieldTitle, title),
		zap.Int(LogFieldParent, int(parent)))
	return &Section{model: m, id: id}, nil
}

// Sections returns handles to the top-level sections in insertion order.
func (m *PromptObjectModel) Sections() []*Section {
	return m.handles(m.tree.Roots())
}

// Len returns the number of top-level sections.
func (m *PromptObjectModel) Len() int {
	return len(m.tree.Roots())
}

// SectionCount returns the number of sections at every depth.
func (m *PromptObjectModel) SectionCount() int {
	return m.tree.Len()
}

// IsEmpty reports whether the model has no sections.
func (m *PromptObjectModel) IsEmpty() bool {
	return m.tree.Len() == 0
}

// FindSection returns the first section, in depth-first pre-order, whose
// title equals title. Titles are not unique; later matches are ignored.
func (m *PromptObjectModel) FindSection(title string) (*Section, bool) {
	id, ok := internal.FindFirst(m.tree, m.tree.Roots(), title)
	if !ok {
		return nil, false
	}
	return &Section{model: m, id: id}, true
}

func (m *PromptObjectModel) handles(ids []internal.NodeID) []*Section {
	sections := make([]*Section, len(ids))
	for i, id := range ids {
		sections[i] = &Section{model: m, id: id}
	}
	return sections
}
