// Package trace writes per-frame gesture records as CSV for offline tuning.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/furgroom/internal/groom"
)

// Record is one gesture's parameters for one frame.
type Record struct {
	Frame    int     `csv:"frame"`
	Time     float32 `csv:"time"`
	Surface  uint32  `csv:"surface"`
	Gesture  string  `csv:"gesture"`
	Phase    string  `csv:"phase"`
	PosX     float32 `csv:"pos_x"`
	PosY     float32 `csv:"pos_y"`
	PosZ     float32 `csv:"pos_z"`
	SecX     float32 `csv:"sec_x"`
	SecY     float32 `csv:"sec_y"`
	SecZ     float32 `csv:"sec_z"`
	Strength float32 `csv:"strength"`
	Radius   float32 `csv:"radius"`
	Falloff  float32 `csv:"falloff"`
}

// NewRecord flattens p for frame at time t on surface.
func NewRecord(frame int, t float32, surface uint32, p groom.Params) Record {
	return Record{
		Frame:    frame,
		Time:     t,
		Surface:  surface,
		Gesture:  p.Kind.String(),
		Phase:    p.Phase.String(),
		PosX:     p.Position.X,
		PosY:     p.Position.Y,
		PosZ:     p.Position.Z,
		SecX:     p.Secondary.X,
		SecY:     p.Secondary.Y,
		SecZ:     p.Secondary.Z,
		Strength: p.Strength,
		Radius:   p.Radius,
		Falloff:  p.Falloff,
	}
}

// Recorder appends records to a CSV stream, writing the header once.
// A nil *Recorder discards everything.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewRecorder creates the CSV file at path. Returns nil if path is empty.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// NewWriterRecorder records to w, which the caller owns.
func NewWriterRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// WriteFrame records every param in params for one frame.
func (r *Recorder) WriteFrame(frame int, t float32, surface uint32, params []groom.Params) error {
	if r == nil || len(params) == 0 {
		return nil
	}

	records := make([]Record, len(params))
	for i, p := range params {
		records[i] = NewRecord(frame, t, surface, p)
	}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	r.rows += len(records)
	return nil
}

// Rows returns the number of records written so far.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Close closes the underlying file if the recorder created it.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
