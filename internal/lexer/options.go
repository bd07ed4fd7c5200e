package lexer

import (
	"github.com/sirupsen/logrus"

	"bassil/internal/diag"
	"bassil/internal/source"
)

// Options configures one scan. Every knob is per-instance: separate
// invocations share no state.
type Options struct {
	// Reporter receives recoverable anomalies (unknown character, malformed
	// number) and the fatal unterminated-string error. May be nil; the scan
	// continues either way.
	Reporter diag.Reporter
	// Trace, when non-nil, receives a verbose per-scan log.
	Trace logrus.FieldLogger
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
	if lx.opts.Trace != nil {
		pos := lx.file.Pos(sp.Start)
		lx.opts.Trace.WithFields(logrus.Fields{
			"code": code.ID(),
			"line": pos.Line,
			"col":  pos.Col,
		}).Warn(msg)
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
	if lx.opts.Trace != nil {
		pos := lx.file.Pos(sp.Start)
		lx.opts.Trace.WithFields(logrus.Fields{
			"code": code.ID(),
			"line": pos.Line,
			"col":  pos.Col,
		}).Error(msg)
	}
}

func (lx *Lexer) trace(scanner string, msg string) {
	if lx.opts.Trace == nil {
		return
	}
	lx.opts.Trace.WithFields(logrus.Fields{
		"scanner": scanner,
		"off":     lx.cursor.Off,
	}).Debug(msg)
}
