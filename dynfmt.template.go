package dynfmt

import (
	"github.com/itsatony/go-dynfmt/internal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Template is a parsed, immutable format string. A Template may be rendered
// any number of times, concurrently, each render through its own Binder.
type Template struct {
	source       string
	pieces       []internal.Piece
	requirements *internal.Requirements
	placeholders int
	engine       *Engine
}

// newTemplate creates a template from parsed pieces.
func newTemplate(source string, pieces []internal.Piece, engine *Engine) *Template {
	placeholders := 0
	for _, piece := range pieces {
		if piece.Type == internal.PiecePlaceholder {
			placeholders++
		}
	}
	return &Template{
		source:       source,
		pieces:       pieces,
		requirements: internal.AggregateRequirements(pieces),
		placeholders: placeholders,
		engine:       engine,
	}
}

// Source returns the text the template was parsed from.
func (t *Template) Source() string {
	return t.source
}

// String re-serialises the template with every placeholder key written out.
// Parsing the result yields a template that renders identically.
func (t *Template) String() string {
	return internal.Source(t.pieces)
}

// Keys returns the argument keys the template references, in order of first use.
func (t *Template) Keys() []Key {
	return t.reqs().Keys()
}

// Requirements returns the forms the template requests for key.
func (t *Template) Requirements(key Key) (FormSet, bool) {
	return t.reqs().Get(key)
}

// PlaceholderCount returns the number of placeholders in the template.
func (t *Template) PlaceholderCount() int {
	return t.placeholders
}

// Bind starts a checked render: every binding is validated against the
// template's requirements.
func (t *Template) Bind() *Binder {
	return newBinder(t, true)
}

// BindUnchecked starts an unchecked render: bindings are accepted as given and
// mismatches surface at render time.
func (t *Template) BindUnchecked() *Binder {
	return newBinder(t, false)
}

// Format binds args to the positional keys 0..len(args)-1 and renders.
func (t *Template) Format(args ...any) (string, error) {
	b := t.Bind()
	if err := b.Positional(args...); err != nil {
		return StrEmpty, err
	}
	return b.Render()
}

// FormatNamed binds args by name and renders.
func (t *Template) FormatNamed(args map[string]any) (string, error) {
	b := t.Bind()
	if err := b.NamedMap(args); err != nil {
		return StrEmpty, err
	}
	return b.Render()
}

// MarshalText implements encoding.TextMarshaler.
func (t *Template) MarshalText() ([]byte, error) {
	return []byte(t.source), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing text with the
// default engine.
func (t *Template) UnmarshalText(text []byte) error {
	return t.decode(string(text))
}

// MarshalYAML implements yaml.Marshaler; a template is stored as its source.
func (t *Template) MarshalYAML() (any, error) {
	return t.source, nil
}

// UnmarshalYAML implements yaml.Unmarshaler so templates held in YAML
// configuration are parsed, and rejected if malformed, at decode time.
func (t *Template) UnmarshalYAML(value *yaml.Node) error {
	var source string
	if err := value.Decode(&source); err != nil {
		return err
	}
	return t.decode(source)
}

func (t *Template) decode(source string) error {
	parsed, err := defaultEngine.Parse(source)
	if err != nil {
		return err
	}
	*t = *parsed
	t.logger().Debug(LogMsgTemplateDecoded, zap.Int(LogFieldPlaceholders, t.placeholders))
	return nil
}

func (t *Template) reqs() *internal.Requirements {
	if t.requirements == nil {
		return internal.NewRequirements()
	}
	return t.requirements
}

func (t *Template) owner() *Engine {
	if t.engine == nil {
		return defaultEngine
	}
	return t.engine
}

func (t *Template) logger() *zap.Logger {
	return t.owner().logger
}
