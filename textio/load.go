// SPDX-License-Identifier: MIT
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/network"
)

// Sentinel errors attached to skipped lines.
var (
	// ErrFieldCount indicates a non-empty line without exactly six fields.
	ErrFieldCount = errors.New("textio: expected 6 fields")

	// ErrBadNumber indicates a weight field that does not parse as a number.
	ErrBadNumber = errors.New("textio: malformed number")

	// ErrLineTooLong indicates a line longer than MaxLineBytes.
	ErrLineTooLong = errors.New("textio: line too long")

	// ErrRoadClosed indicates a road whose four weights are all inf.
	ErrRoadClosed = errors.New("textio: road closed under every regime")
)

// MaxLineBytes bounds the bytes kept per line; the rest of a longer line is
// discarded and the line is skipped.
const MaxLineBytes = 64 << 10

// excerptBytes is how much of an overlong line goes into diagnostics.
const excerptBytes = 80

// fieldsPerLine is origin, destination and four regime weights.
const fieldsPerLine = 2 + network.NumRegimes

// LineError describes one skipped line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Report summarizes a load.
type Report struct {
	Lines   int          // lines read, empty ones included
	Loaded  int          // roads stored
	Skipped []*LineError // lines rejected, in file order
}

// Err combines every skipped line into one error, or nil when none were skipped.
func (r Report) Err() error {
	var err error
	for _, le := range r.Skipped {
		err = multierr.Append(err, le)
	}

	return err
}

// Option configures Load.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger routes per-line diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("textio: WithLogger: nil logger")
	}

	return func(o *options) { o.log = l }
}

// Load reads roads from r into g.
//
// Implementation:
//   - Stage 1: Read line by line; skip blank lines. Lines over MaxLineBytes
//     are drained and skipped.
//   - Stage 2: Split on whitespace and parse four weights.
//   - Stage 3: Store the road; on any failure log, record and continue.
//
// Errors:
//   - Only I/O errors from r. Line-level problems are in Report.Skipped.
func Load(r io.Reader, g *network.Network, opts ...Option) (Report, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		rep Report
		buf []byte
	)
	br := bufio.NewReader(r)
	for {
		line, long, err := readLine(br, buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return rep, fmt.Errorf("textio: read: %w", err)
		}
		eof := err != nil
		if eof && len(line) == 0 && !long {
			break
		}
		buf = line
		rep.Lines++
		o.store(g, &rep, string(line), long)
		if eof {
			break
		}
	}
	o.log.Debug("roads loaded",
		zap.Int("lines", rep.Lines),
		zap.Int("loaded", rep.Loaded),
		zap.Int("skipped", len(rep.Skipped)))

	return rep, nil
}

// store handles one line, recording it as loaded or skipped.
func (o *options) store(g *network.Network, rep *Report, text string, long bool) {
	var err error
	switch {
	case long:
		text = text[:excerptBytes] + "..."
		err = fmt.Errorf("over %d bytes: %w", MaxLineBytes, ErrLineTooLong)
	default:
		fields := strings.Fields(text)
		if len(fields) == 0 {
			return
		}
		err = storeLine(g, fields)
	}
	if err != nil {
		rep.Skipped = append(rep.Skipped, &LineError{Line: rep.Lines, Text: text, Err: err})
		o.log.Warn("skipping road line",
			zap.Int("line", rep.Lines),
			zap.String("text", text),
			zap.Error(err))
		return
	}
	rep.Loaded++
}

// readLine returns the next line without its terminator, reusing buf.
// Bytes past MaxLineBytes are read and dropped, and long is set.
func readLine(br *bufio.Reader, buf []byte) (line []byte, long bool, err error) {
	line = buf[:0]
	var (
		frag []byte
		more bool
	)
	for {
		frag, more, err = br.ReadLine()
		if err != nil {
			return line, long, err
		}
		if room := MaxLineBytes - len(line); len(frag) > room {
			frag, long = frag[:room], true
		}
		line = append(line, frag...)
		if !more {
			return line, long, nil
		}
	}
}

// LoadFile opens path and calls Load.
func LoadFile(path string, g *network.Network, opts ...Option) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, g, opts...)
}

// storeLine parses one non-empty line and writes it into g.
func storeLine(g *network.Network, fields []string) error {
	if len(fields) != fieldsPerLine {
		return fmt.Errorf("got %d: %w", len(fields), ErrFieldCount)
	}
	from, to := fields[0], fields[1]

	var (
		vals   [network.NumRegimes]float64
		closed bool
		err    error
	)
	for i, tok := range fields[2:] {
		if vals[i], err = strconv.ParseFloat(tok, 64); err != nil {
			return fmt.Errorf("%q: %w", tok, ErrBadNumber)
		}
		if math.IsInf(vals[i], 1) {
			closed = true
		}
	}
	w := network.Weights{Normal: vals[0], Rain: vals[1], Snow: vals[2], Storm: vals[3]}
	if !closed {
		return g.AddEdge(from, to, w)
	}

	return storePartial(g, from, to, w)
}

// storePartial stores a road that is closed (Inf) under some regimes.
func storePartial(g *network.Network, from, to string, w network.Weights) error {
	if from == to {
		return fmt.Errorf("%s→%s: %w", from, to, network.ErrSelfLoop)
	}
	for _, r := range network.Regimes() {
		if v := w.At(r); math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%s=%v: %w", r, v, network.ErrInvalidWeight)
		}
	}
	if err := network.ValidateName(from); err != nil {
		return err
	}
	if err := network.ValidateName(to); err != nil {
		return err
	}
	usable := false
	for _, r := range network.Regimes() {
		usable = usable || !math.IsInf(w.At(r), 1)
	}
	if !usable {
		return fmt.Errorf("%s→%s: %w", from, to, ErrRoadClosed)
	}
	_, _ = g.Index(from)
	_, _ = g.Index(to)
	g.RemoveEdge(from, to)
	for _, r := range network.Regimes() {
		if v := w.At(r); !math.IsInf(v, 1) {
			if err := g.UpdateRegime(from, to, r, v); err != nil {
				return err
			}
		}
	}

	return nil
}
