package dynfmt

import (
	"github.com/itsatony/go-dynfmt/internal"
	"go.uber.org/zap"
)

// Engine parses templates and holds the configuration they render with.
// An Engine is safe for concurrent use.
type Engine struct {
	config   *engineConfig
	renderer *internal.Renderer
	cache    *TemplateCache
	logger   *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rendererConfig := internal.RendererConfig{
		DisplayWidth:        config.displayWidth,
		PlaceholderEstimate: config.placeholderEstimate,
	}
	renderer := internal.NewRenderer(rendererConfig, logger)

	var cache *TemplateCache
	if config.cache != nil {
		cache = NewTemplateCache(*config.cache)
	}

	logger.Debug(LogMsgEngineCreated, zap.Bool(LogFieldCache, cache != nil))
	return &Engine{
		config:   config,
		renderer: renderer,
		cache:    cache,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// defaultEngine backs the package-level Parse and MustParse.
var defaultEngine = MustNew()

// Parse parses a template with the default engine.
func Parse(source string) (*Template, error) {
	return defaultEngine.Parse(source)
}

// MustParse parses a template with the default engine and panics on error.
func MustParse(source string) *Template {
	return defaultEngine.MustParse(source)
}

// Parse parses a template source string and returns a Template.
// The returned Template can be rendered multiple times with different arguments.
func (e *Engine) Parse(source string) (*Template, error) {
	if e.cache != nil {
		if tmpl, ok := e.cache.Get(source); ok {
			e.logger.Debug(LogMsgCacheHit)
			return tmpl, nil
		}
		e.logger.Debug(LogMsgCacheMiss)
	}

	pieces, err := internal.ParsePieces(source, e.logger)
	if err != nil {
		return nil, NewParseError(err)
	}

	tmpl := newTemplate(source, pieces, e)
	e.logger.Debug(LogMsgTemplateParsed,
		zap.Int(LogFieldKeys, tmpl.requirements.Len()),
		zap.Int(LogFieldPlaceholders, tmpl.placeholders))

	if e.cache != nil {
		e.cache.Set(source, tmpl)
	}
	return tmpl, nil
}

// MustParse parses a template and panics on error.
func (e *Engine) MustParse(source string) *Template {
	tmpl, err := e.Parse(source)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Format is a convenience method that parses source and renders it with
// positional arguments in one step. For templates rendered repeatedly, use
// Parse instead.
func (e *Engine) Format(source string, args ...any) (string, error) {
	tmpl, err := e.Parse(source)
	if err != nil {
		return StrEmpty, err
	}
	return tmpl.Format(args...)
}

// Cache returns the parse cache, or nil when caching is disabled.
func (e *Engine) Cache() *TemplateCache {
	return e.cache
}
