package lines

// Line is a handle over one logical line of a Session. Do not construct it
// directly, use Session.Line. A Line can be shared between goroutines; all
// of its methods serialize on the owning session's lock.
type Line struct {
	session  *Session
	template string
	params   Params
}

// Text returns the current rendering of the line's template and params. It
// does not touch the terminal.
func (l *Line) Text() (string, error) {
	if l.session == nil {
		return "", ErrUnregisteredLine
	}
	l.session.mu.Lock()
	defer l.session.mu.Unlock()
	return renderTemplate(l.template, l.params)
}

// Update merges params into the line's current params and rewrites the line
// on the terminal in place. Lines positioned after this one are reprinted
// only if the line's row count changed.
func (l *Line) Update(params Params) error {
	if l.session == nil {
		return ErrUnregisteredLine
	}
	return l.session.render(l, nil, params)
}

// Set replaces the line's template, discards its previous params in favor
// of the given ones, and rewrites the line on the terminal.
func (l *Line) Set(template string, params Params) error {
	if l.session == nil {
		return ErrUnregisteredLine
	}
	return l.session.render(l, &template, params)
}
