package pager

// Mode is the interaction mode shown on the status row.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilename
	ModeEnd
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilename:
		return "filename"
	case ModeEnd:
		return "end"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// CommandLine is the status-row state machine. Only the Filename and Search
// modes carry data.
type CommandLine struct {
	mode     Mode
	filename string
	search   SearchEntry
}

// NewCommandLine starts in Filename mode when name is set, otherwise Normal.
func NewCommandLine(name string) *CommandLine {
	if name == "" {
		return &CommandLine{mode: ModeNormal}
	}
	return &CommandLine{mode: ModeFilename, filename: name}
}

func (c *CommandLine) Mode() Mode {
	return c.mode
}

// Filename returns the banner name; it is only meaningful in Filename mode.
func (c *CommandLine) Filename() string {
	return c.filename
}

// SwitchToSearch enters Search mode with an empty entry.
func (c *CommandLine) SwitchToSearch() {
	c.mode = ModeSearch
	c.search = SearchEntry{}
}

func (c *CommandLine) SwitchToNormal() {
	c.mode = ModeNormal
	c.search = SearchEntry{}
}

// Search returns the search entry while in Search mode. Editing is only
// possible through this handle.
func (c *CommandLine) Search() (*SearchEntry, bool) {
	if c.mode != ModeSearch {
		return nil, false
	}
	return &c.search, true
}

// setEnd pins the End banner unless the user is typing a search.
func (c *CommandLine) setEnd() bool {
	if c.mode == ModeEnd || c.mode == ModeSearch {
		return false
	}
	c.mode = ModeEnd
	return true
}

// collapseBanner drops a Filename or End banner back to Normal.
func (c *CommandLine) collapseBanner() bool {
	if c.mode != ModeFilename && c.mode != ModeEnd {
		return false
	}
	c.mode = ModeNormal
	return true
}

// StatusText is what the status row shows for the current mode.
func (c *CommandLine) StatusText() string {
	switch c.mode {
	case ModeFilename:
		return c.filename
	case ModeEnd:
		return "(END)"
	case ModeSearch:
		return "/" + c.search.Text()
	default:
		return ":"
	}
}

// SearchEntry is the text typed after "/" and the cursor within it, counted
// in runes. 0 <= cursor <= len(text) always holds.
type SearchEntry struct {
	text   []rune
	cursor int
}

func (s *SearchEntry) Text() string {
	return string(s.text)
}

func (s *SearchEntry) Cursor() int {
	return s.cursor
}

// PushChar inserts r at the cursor and moves the cursor past it.
func (s *SearchEntry) PushChar(r rune) {
	s.text = append(s.text, 0)
	copy(s.text[s.cursor+1:], s.text[s.cursor:])
	s.text[s.cursor] = r
	s.cursor++
}

// EraseChar removes the rune before the cursor (backspace).
func (s *SearchEntry) EraseChar() bool {
	if s.cursor == 0 {
		return false
	}
	s.text = append(s.text[:s.cursor-1], s.text[s.cursor:]...)
	s.cursor--
	return true
}

// DeleteChar removes the rune under the cursor.
func (s *SearchEntry) DeleteChar() bool {
	if s.cursor >= len(s.text) {
		return false
	}
	s.text = append(s.text[:s.cursor], s.text[s.cursor+1:]...)
	return true
}

func (s *SearchEntry) CursorLeft() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

func (s *SearchEntry) CursorRight() bool {
	if s.cursor >= len(s.text) {
		return false
	}
	s.cursor++
	return true
}
