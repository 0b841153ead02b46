package pager

// Action is the base interface for everything the input layer can ask of a
// Context.
type Action interface{}

type QuitAction struct{}

// SuspendAction stops the process and hands the terminal back to the shell.
type SuspendAction struct{}

// ===== SCROLL ACTIONS =====

type ScrollDownLineAction struct{}
type ScrollUpLineAction struct{}
type ScrollDownScreenAction struct{}
type ScrollUpScreenAction struct{}

// ===== SEARCH ENTRY ACTIONS =====

type EnterSearchAction struct{}
type ExitSearchAction struct{}
type SearchInsertAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchDeleteAction struct{}
type SearchCursorLeftAction struct{}
type SearchCursorRightAction struct{}
