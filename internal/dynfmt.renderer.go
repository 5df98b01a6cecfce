package internal

import (
	"io"
	"strings"

	"go.uber.org/zap"
)

// ArgumentLookup resolves the value bound for a (key, form) pair.
type ArgumentLookup interface {
	Lookup(key ArgumentKey, form Form) (any, error)
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// DisplayWidth measures width and precision in terminal cells instead of code points.
	DisplayWidth bool
	// PlaceholderEstimate is the number of bytes reserved per placeholder.
	PlaceholderEstimate int
}

// Renderer turns parsed pieces and bound arguments into text.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	metrics  TextMetrics
	estimate int
	logger   *zap.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(config RendererConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	estimate := config.PlaceholderEstimate
	if estimate <= 0 {
		estimate = DefaultPlaceholderEstimate
	}
	var metrics TextMetrics = RuneMetrics{}
	if config.DisplayWidth {
		metrics = DisplayMetrics{}
	}
	logger.Debug(LogMsgRendererCreated, zap.Bool(LogFieldDisplayWidth, config.DisplayWidth))
	return &Renderer{
		metrics:  metrics,
		estimate: estimate,
		logger:   logger,
	}
}

// output is the sink a render writes to piece by piece.
type output interface {
	WriteString(s string) (int, error)
}

// EstimateSize returns the buffer size reserved for rendering pieces.
func (r *Renderer) EstimateSize(pieces []Piece) int {
	size := 0
	for _, piece := range pieces {
		switch piece.Type {
		case PieceLiteral:
			size += len(piece.Text)
		case PieceEscapedOpen, PieceEscapedClose:
			size++
		case PiecePlaceholder:
			size += r.estimate
		}
	}
	return size
}

// Render renders pieces into a new string.
func (r *Renderer) Render(pieces []Piece, args ArgumentLookup) (string, error) {
	var sb strings.Builder
	sb.Grow(r.EstimateSize(pieces))
	if err := r.render(&sb, pieces, args); err != nil {
		return StrEmpty, err
	}
	return sb.String(), nil
}

// RenderTo writes pieces to w as they are produced and returns the number of
// bytes written. The first failed write aborts the render with a *WriteError.
func (r *Renderer) RenderTo(w io.Writer, pieces []Piece, args ArgumentLookup) (int64, error) {
	cw := &countingWriter{w: w}
	err := r.render(cw, pieces, args)
	return cw.n, err
}

func (r *Renderer) render(out output, pieces []Piece, args ArgumentLookup) error {
	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldPieces, len(pieces)))

	var field strings.Builder
	written := 0
	for _, piece := range pieces {
		var text string
		switch piece.Type {
		case PieceLiteral:
			text = piece.Text
		case PieceEscapedOpen:
			text = string(rune(CharOpenBrace))
		case PieceEscapedClose:
			text = string(rune(CharCloseBrace))
		case PiecePlaceholder:
			field.Reset()
			if err := r.renderPlaceholder(&field, piece, args); err != nil {
				r.logger.Debug(LogMsgRenderFailed,
					zap.Int(LogFieldOffset, piece.Offset),
					zap.Error(err))
				return err
			}
			text = field.String()
		}
		n, err := out.WriteString(text)
		written += n
		if err != nil {
			r.logger.Debug(LogMsgRenderFailed, zap.Error(err))
			return err
		}
	}

	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, written))
	return nil
}

func (r *Renderer) renderPlaceholder(sb *strings.Builder, piece Piece, args ArgumentLookup) error {
	form := piece.Form()
	value, err := args.Lookup(piece.Key, form)
	if err != nil {
		return err
	}

	f := FieldFor(piece.Spec)
	if spec := piece.Spec; spec != nil {
		if spec.Width.Dynamic {
			if f.Width, err = r.resolveAmount(spec.Width.Key, args); err != nil {
				return err
			}
		}
		if spec.Precision.Kind == PrecisionDynamic {
			if f.Precision, err = r.resolveAmount(spec.Precision.Key, args); err != nil {
				return err
			}
		}
	}

	if !WriteValue(sb, value, f, r.metrics) {
		return NewFormNotBoundError(piece.Key, form, OfferedForms(value))
	}
	return nil
}

func (r *Renderer) resolveAmount(key ArgumentKey, args ArgumentLookup) (int, error) {
	value, err := args.Lookup(key, FormAmount)
	if err != nil {
		return 0, err
	}
	amount, ok := AmountOf(value)
	if !ok {
		return 0, NewFormNotBoundError(key, FormAmount, OfferedForms(value))
	}
	return amount, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) WriteString(s string) (int, error) {
	n, err := io.WriteString(cw.w, s)
	cw.n += int64(n)
	if err != nil {
		return n, &WriteError{Cause: err}
	}
	return n, nil
}
