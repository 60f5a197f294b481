package lines

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Session owns a section of the terminal and keeps a registry of logical
// lines printed into it, so each line can later be rewritten in place even
// when its rendered text wraps over several physical rows. All mutating
// operations serialize on one session-wide lock: terminal writes are
// inherently sequential and interleaved escape sequences from two
// goroutines would corrupt the display.
//
// Writes go straight to the output with no buffering, since the cursor
// position is tracked purely in memory and must stay in step with the real
// terminal. Do not write to the underlying stream yourself while the
// session is active; call End when done so later output lands below the
// session's rows.
type Session struct {
	mu sync.Mutex
	w  io.Writer

	// width is the column count used for wrapping, fixed at construction.
	width int

	// rows is the total number of physical rows the session occupies,
	// starting at 1 for the row the program begins on.
	rows int

	// cursor is the row the terminal cursor was last moved to, 0-indexed
	// from the session's first row.
	cursor int

	entries []*lineEntry
	index   map[*Line]int

	log zerolog.Logger
}

// New creates a session writing to os.Stdout, with the wrap width taken
// from the terminal. Both can be overridden with options. New returns
// ErrInvalidWidth if the resolved width is not positive, or an error if no
// width was given and the output is not a terminal.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		w:     os.Stdout,
		rows:  1,
		index: make(map[*Line]int),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.width == 0 {
		f, ok := s.w.(*os.File)
		if !ok {
			return nil, fmt.Errorf("output is not a terminal: %w", ErrInvalidWidth)
		}
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil {
			return nil, fmt.Errorf("query terminal size: %w", err)
		}
		s.width = width
	}
	if s.width <= 0 {
		return nil, ErrInvalidWidth
	}

	return s, nil
}

// Width returns the column count the session wraps at.
func (s *Session) Width() int {
	return s.width
}

// Line prints a new logical line below the session's current content and
// returns a handle for updating it later.
//
// The template may contain {name} placeholders substituted from params; the
// point of passing values separately is that they can then be updated
// individually through Line.Update.
func (s *Session) Line(template string, params Params) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := &Line{session: s, template: template, params: make(Params, len(params))}
	for k, v := range params {
		l.params[k] = v
	}

	text, err := renderTemplate(l.template, l.params)
	if err != nil {
		return nil, err
	}
	height := s.heightOf(text)

	entry := &lineEntry{
		line:   l,
		text:   text,
		row:    s.rows - 1,
		height: height,
	}
	s.index[l] = len(s.entries)
	s.entries = append(s.entries, entry)

	// Writing content larger than the space below the cursor makes the
	// terminal scroll prior output upward, which would break every row
	// recorded so far. Reserve the vertical space with blank rows first;
	// the entry's own row absorbs one.
	if err := s.extend(height - 1); err != nil {
		return nil, err
	}
	if err := s.printAt(text, entry.row); err != nil {
		return nil, err
	}

	s.log.Debug().Int("row", entry.row).Int("height", height).Msg("line created")
	return l, nil
}

// End moves the cursor to the session's last row, so that whatever the
// program prints next does not overwrite session content.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveTo(s.rows - 1)
}

// render recomputes a line's text and rewrites it at its current row. When
// the row count changes, every subsequent entry is reprinted at its shifted
// row, and rows left unused at the tail are erased.
func (s *Session) render(l *Line, template *string, params Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[l]
	if !ok {
		return ErrUnregisteredLine
	}
	entry := s.entries[i]

	if template != nil {
		l.template = *template
		l.params = make(Params, len(params))
	}
	for k, v := range params {
		l.params[k] = v
	}

	text, err := renderTemplate(l.template, l.params)
	if err != nil {
		return err
	}

	oldHeight := entry.height
	newHeight := s.heightOf(text)
	entry.text = text

	if newHeight > oldHeight {
		if err := s.extend(newHeight - oldHeight); err != nil {
			return err
		}
	}

	// Rows the line no longer reaches hold stale content until the
	// cascade reprints over them or the tail is truncated; erase them
	// now so the erasure always covers max(old, new) rows.
	for row := entry.row + newHeight; row < entry.row+oldHeight; row++ {
		if err := s.clearAt(row); err != nil {
			return err
		}
	}

	if err := s.printAt(text, entry.row); err != nil {
		return err
	}

	if newHeight != oldHeight {
		s.log.Debug().
			Int("row", entry.row).
			Int("old_height", oldHeight).
			Int("new_height", newHeight).
			Msg("line resized, shifting subsequent lines")

		entry.height = newHeight
		row := entry.row + newHeight
		for _, next := range s.entries[i+1:] {
			next.row = row
			if err := s.printAt(next.text, row); err != nil {
				return err
			}
			row += next.height
		}
	}

	if newHeight < oldHeight {
		// Everything shifted up, leaving remnants of earlier prints at
		// the tail of the canvas.
		if err := s.truncate(); err != nil {
			return err
		}
	}

	return nil
}

// heightOf returns the number of physical rows text occupies at the
// session's width, at least 1 even for empty text.
func (s *Session) heightOf(text string) int {
	height := (utf8.RuneCountInString(text) + s.width - 1) / s.width
	if height < 1 {
		height = 1
	}
	return height
}

// printAt erases every row text will occupy starting at row, then writes
// text there, leaving the cursor on the row below the text.
func (s *Session) printAt(text string, row int) error {
	height := s.heightOf(text)

	for r := row; r < row+height; r++ {
		if err := s.clearAt(r); err != nil {
			return err
		}
	}

	if err := s.moveTo(row); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return err
	}

	s.cursor = row + height
	if s.rows < s.cursor+1 {
		s.rows = s.cursor + 1
	}
	return nil
}

// clearAt erases the content of a single row, leaving the cursor on it.
func (s *Session) clearAt(row int) error {
	if err := s.moveTo(row); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, clearRow)
	return err
}

// moveTo places the cursor at column 0 of the given row using a single
// relative vertical move. This is the only method that emits positioning
// sequences; all printing goes through it first.
func (s *Session) moveTo(row int) error {
	var seq string
	switch diff := row - s.cursor; {
	case diff == 0:
		seq = cursorColumnZero
	case diff > 0:
		seq = fmt.Sprintf(cursorDownFmt, diff)
	default:
		seq = fmt.Sprintf(cursorUpFmt, -diff)
	}
	if _, err := io.WriteString(s.w, seq); err != nil {
		return err
	}
	s.cursor = row
	return nil
}

// extend grows the canvas by n blank rows, printed one by one at the tail
// so the terminal allocates them before any oversized content is written.
func (s *Session) extend(n int) error {
	start := s.rows - 1
	for i := 0; i < n; i++ {
		if err := s.printAt("", start+i); err != nil {
			return err
		}
	}
	return nil
}

// truncate erases every row from the cursor to the end of the canvas,
// shrinks the canvas accordingly and puts the cursor back where it was.
func (s *Session) truncate() error {
	origin := s.cursor
	last := s.rows - 1
	removed := last - origin

	for row := origin; row < last; row++ {
		if err := s.printAt("", row); err != nil {
			return err
		}
	}
	if err := s.moveTo(origin); err != nil {
		return err
	}
	s.rows -= removed

	s.log.Debug().Int("rows", removed).Msg("trailing rows truncated")
	return nil
}
