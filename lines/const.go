package lines

// ANSI escape sequences used for cursor positioning and row erasure.
const (
	// clearRow erases the entire row the cursor is on.
	clearRow = "\x1b[2K"

	// cursorColumnZero moves the cursor to column 0 of the current row.
	cursorColumnZero = "\x1b[0G"

	// cursorDownFmt / cursorUpFmt move the cursor n rows down/up,
	// landing at column 0.
	cursorDownFmt = "\x1b[%dE"
	cursorUpFmt   = "\x1b[%dF"
)
