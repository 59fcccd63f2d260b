package pom

import (
	"encoding/json"

	hjson "github.com/hjson/hjson-go/v4"
	"github.com/itsatony/go-pom/internal"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SectionDocument is the serializable form of a section and its subtree.
// A document is a list of top-level SectionDocuments. Numbering is not part
// of the document; it is recomputed when the model is rendered.
type SectionDocument struct {
	Title       string            `json:"title" yaml:"title" mapstructure:"title"`
	Body        string            `json:"body,omitempty" yaml:"body,omitempty" mapstructure:"body"`
	Bullets     []string          `json:"bullets,omitempty" yaml:"bullets,omitempty" mapstructure:"bullets"`
	Subsections []SectionDocument `json:"subsections,omitempty" yaml:"subsections,omitempty" mapstructure:"subsections"`
}

// ToDocument returns a deep copy of the model as plain data.
func (m *PromptObjectModel) ToDocument() []SectionDocument {
	return m.documents(m.tree.Roots())
}

func (m *PromptObjectModel) documents(ids []internal.NodeID) []SectionDocument {
	docs := make([]SectionDocument, 0, len(ids))
	for _, id := range ids {
		n := m.tree.Node(id)
		doc := SectionDocument{
			Title: n.Title,
			Body:  n.Body,
		}
		if len(n.Bullets) > 0 {
			doc.Bullets = append([]string(nil), n.Bullets...)
		}
		if len(n.Children) > 0 {
			doc.Subsections = m.documents(n.Children)
		}
		docs = append(docs, doc)
	}
	return docs
}

// ToMap returns the model as generic maps and slices, using the same keys
// as the JSON and YAML documents. Empty fields are omitted.
func (m *PromptObjectModel) ToMap() []map[string]any {
	return documentsToMaps(m.ToDocument())
}

func documentsToMaps(docs []SectionDocument) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		entry := map[string]any{DocFieldTitle: doc.Title}
		if doc.Body != "" {
			entry[DocFieldBody] = doc.Body
		}
		if len(doc.Bullets) > 0 {
			entry[DocFieldBullets] = doc.Bullets
		}
		if len(doc.Subsections) > 0 {
			entry[DocFieldSubsections] = documentsToMaps(doc.Subsections)
		}
		out = append(out, entry)
	}
	return out
}

// ToJSON serializes the model as an indented JSON document.
func (m *PromptObjectModel) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m.ToDocument(), "", JSONIndent)
	if err != nil {
		return nil, NewDocumentEncodeError(SourceJSON, err)
	}
	return data, nil
}

// ToYAML serializes the model as a YAML document.
func (m *PromptObjectModel) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(m.ToDocument())
	if err != nil {
		return nil, NewDocumentEncodeError(SourceYAML, err)
	}
	return data, nil
}

// FromJSON builds a model from a JSON document.
func FromJSON(data []byte, opts ...Option) (*PromptObjectModel, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentSyntax, SourceJSON, err)
	}
	return fromRaw(raw, SourceJSON, opts)
}

// FromYAML builds a model from a YAML document. Since JSON is a subset of
// YAML, JSON documents are accepted too.
func FromYAML(data []byte, opts ...Option) (*PromptObjectModel, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentSyntax, SourceYAML, err)
	}
	return fromRaw(raw, SourceYAML, opts)
}

// FromHJSON builds a model from an HJSON document (JSON with comments,
// optional quotes and trailing commas), convenient for hand-written prompts.
func FromHJSON(data []byte, opts ...Option) (*PromptObjectModel, error) {
	var raw any
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentSyntax, SourceHJSON, err)
	}
	return fromRaw(raw, SourceHJSON, opts)
}

// FromMap builds a model from generic data shaped like a document: a slice
// of maps with title, body, bullets and subsections keys. Text fields must
// be strings; numbers, booleans and unknown keys are rejected.
func FromMap(data any, opts ...Option) (*PromptObjectModel, error) {
	return fromRaw(data, SourceMap, opts)
}

// FromDocument builds a model from SectionDocuments. Every section goes
// through AddSection/AddSubsection, so the usual title validation applies.
func FromDocument(docs []SectionDocument, opts ...Option) (*PromptObjectModel, error) {
	m := New(opts...)
	if err := m.appendDocuments(internal.NoParent, nil, docs); err != nil {
		return nil, err
	}
	return m, nil
}

func fromRaw(raw any, source string, opts []Option) (*PromptObjectModel, error) {
	docs, err := decodeDocuments(raw)
	if err != nil {
		return nil, NewDocumentError(ErrMsgDocumentDecode, source, err)
	}

	m, err := FromDocument(docs, opts...)
	if err != nil {
		return nil, err
	}

	m.logger.Debug(LogMsgDocumentLoaded,
		zap.String(LogFieldSource, source),
		zap.Int(LogFieldSections, m.SectionCount()))
	return m, nil
}

func decodeDocuments(raw any) ([]SectionDocument, error) {
	var docs []SectionDocument
	if raw == nil {
		return docs, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &docs,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *PromptObjectModel) appendDocuments(parent internal.NodeID, path []int, docs []SectionDocument) error {
	for i, doc := range docs {
		childPath := append(path[:len(path):len(path)], i+internal.NumberFirst)

		opts := []SectionOption{WithBody(doc.Body), WithBullets(doc.Bullets...)}
		section, err := m.addSection(parent, doc.Title, opts)
		if err != nil {
			return NewDocumentSectionError(internal.FormatNumber(childPath), doc.Title, err)
		}
		if err := m.appendDocuments(section.id, childPath, doc.Subsections); err != nil {
			return err
		}
	}
	return nil
}
