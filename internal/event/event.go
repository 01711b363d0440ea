// internal/event/event.go
package event

import "github.com/bethropolis/coral/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferModified   // Fired when a transaction is committed to the buffer
	TypeBufferLoaded     // Fired after a buffer is successfully loaded
	TypeBufferSaved      // Fired after a buffer is successfully saved
	TypeSelectionChanged // Fired when the selection set changes
	TypeModeChanged      // Fired when the active selection mode changes
	TypeHistoryMoved     // Fired after undo/redo/branch navigation

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// BufferModifiedData contains info about buffer changes, one entry per edit,
// for incremental re-parsing and rendering.
type BufferModifiedData struct {
	Edits   []types.EditInfo
	Version int
}

// SelectionChangedData carries the primary cursor's index and the cursor
// count.
type SelectionChangedData struct {
	Primary int
	Count   int
}

// ModeChangedData carries the new selection mode name.
type ModeChangedData struct {
	Mode string
}

// HistoryMovedData reports undo/redo direction.
type HistoryMovedData struct {
	Undo bool
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}
