package descriptor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/archetype/log"
)

// Read builds a [Script] from the events of a single document.
//
// Every structural problem aborts the read with an [*Error] naming the
// offending element and its ancestors; no partial tree is returned.
func Read(ctx context.Context, src EventSource, opts ...Option) (*Script, error) {
	o := makeOptions(opts...)
	r := &reader{logger: o.logger}

	script, err := r.read(ctx, src)
	if err != nil {
		o.logger.DebugContext(ctx, "read failed", slog.Any("error", err))

		return nil, err
	}

	o.logger.TraceContext(ctx, "read complete",
		slog.Int("contexts", len(script.Contexts)),
		slog.Int("steps", len(script.Steps)),
		slog.Int("inputs", len(script.Inputs)),
		slog.Bool("output", script.Output != nil))

	return script, nil
}

// ReadXML reads a descriptor from an XML document.
func ReadXML(ctx context.Context, rd io.Reader, opts ...Option) (*Script, error) {
	return Read(ctx, NewXMLSource(rd), opts...)
}

// frame is one open element. The reader's stack of frames tracks both the
// grammar position and the node that receives children and text.
type frame struct {
	node any
	name string
	text strings.Builder
	pos  Position
	top  bool
}

type reader struct {
	logger log.Logger
	script *Script
	stack  []*frame
	done   bool
}

func (r *reader) read(ctx context.Context, src EventSource) (*Script, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, ErrReadEvents.Wrap(err).In(r.path(0), "")
		}

		if err := r.handle(ctx, ev); err != nil {
			return nil, err
		}
	}

	if !r.done {
		if top := r.top(); top != nil {
			return nil, ErrIncompleteDocument.In(r.path(1), top.name)
		}

		return nil, ErrIncompleteDocument
	}

	return r.script, nil
}

func (r *reader) handle(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventOpen:
		return r.open(ctx, ev.Name, attributes(ev.Attrs))

	case EventText:
		if top := r.top(); top != nil {
			top.text.WriteString(ev.Text)
		}

		return nil

	case EventClose:
		return r.close(ctx, ev.Name)

	default:
		return ErrUnexpectedElement.In(r.path(0), ev.Name)
	}
}

func (r *reader) open(ctx context.Context, name string, a attributes) error {
	var (
		pos    = PositionDocument
		parent any
	)

	if top := r.top(); top != nil {
		pos, parent = top.pos, top.node
	} else if r.done {
		return ErrUnexpectedElement.In(nil, name)
	}

	t, ok := grammar[pos][name]
	if !ok {
		return ErrUnexpectedElement.In(r.path(0), name)
	}

	if a == nil {
		a = attributes{}
	}

	node, err := t.open(r, parent, a)
	if err != nil {
		return locate(err, r.path(0), name)
	}

	r.stack = append(r.stack, &frame{node: node, name: name, pos: t.next, top: t.top})

	r.logger.TraceContext(ctx, "open",
		slog.String("element", name),
		slog.String("from", pos.String()),
		slog.String("to", t.next.String()),
		slog.Int("depth", len(r.stack)))

	return nil
}

func (r *reader) close(ctx context.Context, name string) error {
	top := r.top()
	if top == nil || top.name != name {
		return ErrUnexpectedClose.In(r.path(0), name)
	}

	if set, ok := textSetters[top.pos]; ok {
		if text := strings.TrimSpace(top.text.String()); text != "" {
			if err := set(top.node, text); err != nil {
				return locate(err, r.path(1), name)
			}
		}
	}

	r.stack = r.stack[:len(r.stack)-1]

	r.logger.TraceContext(ctx, "close",
		slog.String("element", name),
		slog.String("position", top.pos.String()),
		slog.Int("depth", len(r.stack)))

	if top.top {
		if o, ok := top.node.(*Output); ok {
			r.script.Output = o
		}
	}

	if len(r.stack) == 0 {
		r.done = true
	}

	return nil
}

func (r *reader) top() *frame {
	if len(r.stack) == 0 {
		return nil
	}

	return r.stack[len(r.stack)-1]
}

// path returns the element names on the stack, leaving off the innermost
// skip frames.
func (r *reader) path(skip int) []string {
	n := max(len(r.stack)-skip, 0)
	names := make([]string, n)

	for i, f := range r.stack[:n] {
		names[i] = f.name
	}

	return names
}

// locate positions err at element below path. Errors that are not
// descriptor errors are reported as invalid values.
func locate(err error, path []string, element string) error {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInvalidValue.Wrap(err)
	}

	return e.In(path, element)
}
