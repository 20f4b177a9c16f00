// Package consolescribe provides a scribe that writes items to a
// terminal or any io.Writer, one line per item, either as wire-format
// JSON or in a colorized human-readable layout.
package consolescribe

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/deixis/journal"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Format selects the output layout
type Format string

const (
	// JSON writes one wire-format JSON object per line
	JSON Format = "json"
	// Human writes a colorized line for terminals
	Human Format = "human"
)

// Config configures a console scribe
type Config struct {
	// Writer receives the formatted lines. Required.
	Writer io.Writer
	// Format selects the output layout. Defaults to JSON.
	Format Format
	// Verbosity controls how much of each item's payload is serialised.
	// Defaults to V0.
	Verbosity journal.Verbosity
	// MinSeverity drops items below the given severity. Defaults to
	// Debug, which drops nothing.
	MinSeverity journal.Severity
}

// Scribe writes items to a writer. Concurrent pushes are serialised
// internally, so lines never interleave.
type Scribe struct {
	mu sync.Mutex

	w         io.Writer
	format    Format
	verbosity journal.Verbosity
	min       journal.Severity
}

// New creates a console scribe
func New(cfg Config) (*Scribe, error) {
	if cfg.Writer == nil {
		return nil, errors.New("consolescribe: writer is required")
	}
	format := cfg.Format
	if format == "" {
		format = JSON
	}
	switch format {
	case JSON, Human:
	default:
		return nil, errors.Errorf("consolescribe: unknown format <%s>", format)
	}
	return &Scribe{
		w:         cfg.Writer,
		format:    format,
		verbosity: cfg.Verbosity,
		min:       cfg.MinSeverity,
	}, nil
}

// Push implements journal.Scribe
func (s *Scribe) Push(item journal.Item) error {
	if item.Severity < s.min {
		return nil
	}

	var line []byte
	switch s.format {
	case Human:
		l, err := s.human(item)
		if err != nil {
			return err
		}
		line = l
	default:
		l, err := journal.ItemJSON(s.verbosity, item)
		if err != nil {
			return err
		}
		line = l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(line, '\n')); err != nil {
		return errors.Wrap(err, "consolescribe: write")
	}
	return nil
}

var severityColours = map[journal.Severity]*color.Color{
	journal.Debug:     color.New(color.FgCyan),
	journal.Info:      color.New(color.FgGreen),
	journal.Notice:    color.New(color.FgGreen),
	journal.Warning:   color.New(color.FgYellow),
	journal.Error:     color.New(color.FgRed),
	journal.Critical:  color.New(color.FgRed, color.Bold),
	journal.Alert:     color.New(color.FgMagenta, color.Bold),
	journal.Emergency: color.New(color.FgMagenta, color.Bold),
}

func (s *Scribe) human(item journal.Item) ([]byte, error) {
	data, err := journal.PayloadJSON(s.verbosity, item.Payload)
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}
	buf.WriteString(item.Time.Format(time.RFC3339Nano))
	buf.WriteByte(' ')
	buf.WriteString(severityColours[item.Severity].Sprint(item.Severity.String()))
	buf.WriteString(" [")
	buf.WriteString(item.Namespace.String())
	buf.WriteString("] ")
	buf.WriteString(item.Message.String())
	if !bytes.Equal(data, []byte("{}")) && !bytes.Equal(data, []byte("null")) {
		buf.WriteByte(' ')
		buf.Write(data)
	}
	return buf.Bytes(), nil
}
