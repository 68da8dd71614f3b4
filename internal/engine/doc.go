// Package engine provides the textual-state engine for snarkyed.
//
// The engine package serves as the main facade, combining the loaded
// document with the caret and viewport that navigate it.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - rope: B+ tree rope for text storage (O(log n) line seek)
//   - textstore: the loaded document with line-indexed reads
//   - grapheme: grapheme cluster columns and display widths
//   - cursor: caret position and sticky column
//   - navigator: intents mapped to cursor and viewport changes
//
// The viewport itself lives in renderer/viewport.
//
// # Frame Cycle
//
// A frontend drives the engine once per frame: it decodes input into
// intents and applies them, then calls Update with the current display
// geometry and paints the returned Frame.
//
//	e, err := engine.Open("notes.txt", engine.WithPageStep(20))
//	if err != nil {
//		return err
//	}
//	e.Apply(engine.Intent{Kind: engine.IntentDown, Count: 3})
//	frame := e.Update(engine.Geometry{Width: 80, Height: 24, LineHeight: 1})
//	fmt.Print(frame.Text)
//
// # Thread Safety
//
// Engine holds no locks. All calls must come from one goroutine, normally
// the frontend's event loop.
package engine
