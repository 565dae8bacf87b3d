package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Backend is the interface that all output backends implement.
//
// Drawing methods do not return errors. A backend remembers the first
// failure and reports it from End, so a figure can issue a whole frame of
// calls and check once.
type Backend interface {
	// Begin initializes the backend for a frame of the given pixel size.
	// It must be called before any drawing operation.
	Begin(width, height int) error

	// End finalizes the frame and returns the first drawing error, if any.
	// After End the output methods (WriteTo, SaveToFile, Image) can be used.
	End() error

	// Save pushes the current clip onto a stack.
	Save()

	// Restore pops the clip saved by the matching Save.
	// If the stack is empty, this is a no-op.
	Restore()

	// ClipRect intersects the current clip with r.
	ClipRect(r Rect)

	// FillPath fills path with paint.
	FillPath(path *gg.Path, paint Paint)

	// StrokePath strokes path with stroke.
	StrokePath(path *gg.Path, stroke Stroke)

	// DrawText draws s anchored at (x, y). See TextStyle for anchoring.
	DrawText(s string, x, y float64, style TextStyle)
}

// WriterBackend can stream its output.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered frame. Call only after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend can write its output to a file directly.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered frame to path. Call only after End.
	SaveToFile(path string) error
}

// ImageBackend exposes the rendered frame as pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame. Call only after End.
	Image() image.Image
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CountingWriter wraps w so backends can report byte counts from WriteTo.
// The returned function reports the bytes written so far.
func CountingWriter(w io.Writer) (io.Writer, func() int64) {
	cw := &countingWriter{w: w}
	return cw, func() int64 { return cw.n }
}
