package lines

// lineEntry carries the physical properties of one logical line: where it
// currently sits on the terminal and how many rows it occupies.
//
// text is kept here in spite of being recomputable through Line.Text():
// a cascade must reprint lines exactly as they were last written, and the
// handle's params may have been updated by another goroutine in the
// meantime. Shifting always shifts the text that is actually on screen.
type lineEntry struct {
	line   *Line
	text   string
	row    int
	height int
}
