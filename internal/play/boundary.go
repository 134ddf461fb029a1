// internal/play/boundary.go
//
// The interaction boundary between the engine and whatever renders it.
// The engine only ever pushes status text and board snapshots out, and
// blocks on ReadGuess for exactly one guess (or a quit signal) per
// turn. Rendering, keystroke editing, and cursor handling all live on
// the other side of this interface.

package play

import "github.com/emacsmirror/wordel/internal/game"

// Boundary is implemented by the display/input layer.
type Boundary interface {
	// DisplayStatus replaces the current status text.
	DisplayStatus(msg string)

	// AppendStatus concatenates to the current status text. Used for
	// marathon score lines so the round message stays visible.
	AppendStatus(msg string)

	// RenderBoard shows the scored rows plus a blank in-progress row of
	// blankLen letters at index currentRow. Purely informational.
	RenderBoard(rows []game.ScoredGuess, blankLen, currentRow int)

	// ReadGuess blocks until the player submits one complete guess or
	// signals quit. The expected length is advisory for the input side.
	ReadGuess(expectedLen int) (guess string, quit bool)
}
