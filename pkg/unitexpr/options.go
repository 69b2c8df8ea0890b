package unitexpr

import (
	"fmt"
	"io"
)

// Options configure one parser. The zero value disables debug tracing.
type Options struct {
	// Debug receives a trace of the reduction when non-nil.
	Debug io.Writer
}

// Option is a functional option for configuring a parser.
type Option func(*Options)

// WithDebug directs the parser's reduction trace to w.
func WithDebug(w io.Writer) Option {
	return func(o *Options) {
		o.Debug = w
	}
}

func (p *Parser) debugf(format string, args ...any) {
	if p.opts.Debug == nil {
		return
	}
	fmt.Fprintf(p.opts.Debug, format+"\n", args...)
}
