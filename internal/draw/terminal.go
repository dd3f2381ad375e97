package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	escClearScreen = "\033[H\033[2J"
	escHideCursor  = "\033[?25l"
	escShowCursor  = "\033[?25h"
)

// HUD collects one frame of output: the canvas pixels written through Write
// and text placed on top of them in canvas cells. Flush sends the frame in
// MTU-sized chunks so a remote terminal sees few partial frames.
type HUD struct {
	out    *bufio.Writer
	frame  strings.Builder
	width  int
	offCol int
	offRow int
}

// NewHUD creates a HUD for a render area width cells wide, placed at the
// given terminal offset.
func NewHUD(w io.Writer, width, offsetCol, offsetRow int) *HUD {
	h := &HUD{out: bufio.NewWriterSize(w, 8192)}
	h.Place(width, offsetCol, offsetRow)
	return h
}

// Place moves the render area after a terminal resize.
func (h *HUD) Place(width, offsetCol, offsetRow int) {
	h.width = width
	h.offCol = offsetCol
	h.offRow = offsetRow
}

// Write appends raw bytes (escapes, canvas output) to the frame.
func (h *HUD) Write(p []byte) (int, error) {
	return h.frame.Write(p)
}

// Text places s at the 1-based canvas cell col, row.
func (h *HUD) Text(col, row int, s string) {
	var num [20]byte
	h.frame.WriteString("\033[")
	h.frame.Write(strconv.AppendInt(num[:0], int64(max(row, 1)+h.offRow), 10))
	h.frame.WriteByte(';')
	h.frame.Write(strconv.AppendInt(num[:0], int64(max(col, 1)+h.offCol), 10))
	h.frame.WriteByte('H')
	h.frame.WriteString(s)
}

// Centered places s in the middle of row.
func (h *HUD) Centered(row int, s string) {
	h.Text(h.width/2-len([]rune(s))/2+1, row, s)
}

// Right places s so it ends at the right edge of row.
func (h *HUD) Right(row int, s string) {
	h.Text(h.width-len([]rune(s)), row, s)
}

// Flush sends the frame and starts a new one.
func (h *HUD) Flush() error {
	data := h.frame.String()
	h.frame.Reset()
	if err := writeChunked(h.out, data); err != nil {
		return err
	}
	return h.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen blanks the terminal and homes the cursor.
func ClearScreen(w io.Writer) { _, _ = io.WriteString(w, escClearScreen) }

// HideCursor hides the cursor while a session is playing.
func HideCursor(w io.Writer) { _, _ = io.WriteString(w, escHideCursor) }

// ShowCursor restores the cursor when a session ends.
func ShowCursor(w io.Writer) { _, _ = io.WriteString(w, escShowCursor) }
