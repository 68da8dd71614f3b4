package app

import (
	"github.com/dshills/snarkyed/internal/engine"
	"github.com/dshills/snarkyed/internal/renderer/backend"
)

// maxCount bounds a typed repeat count.
const maxCount = 999_999

type actionKind int

const (
	actionNone actionKind = iota
	actionIntent
	actionCommandLine
	actionGoTo
	actionQuit
)

// lastLine is the goto target meaning the final line of the document.
const lastLine = -1

type action struct {
	kind   actionKind
	intent engine.Intent
	line   int
}

// keyDecoder turns normal-mode key events into actions. Digits typed
// before a motion form its repeat count, as in vi.
type keyDecoder struct {
	count int
}

var specialKeys = map[backend.Key]engine.IntentKind{
	backend.KeyUp:       engine.IntentUp,
	backend.KeyDown:     engine.IntentDown,
	backend.KeyLeft:     engine.IntentLeft,
	backend.KeyRight:    engine.IntentRight,
	backend.KeyHome:     engine.IntentLineStart,
	backend.KeyEnd:      engine.IntentLineEnd,
	backend.KeyPageUp:   engine.IntentPageUp,
	backend.KeyPageDown: engine.IntentPageDown,
	backend.KeyCtrlB:    engine.IntentPageUp,
	backend.KeyCtrlF:    engine.IntentPageDown,
}

var runeKeys = map[rune]engine.IntentKind{
	'k': engine.IntentUp,
	'j': engine.IntentDown,
	'h': engine.IntentLeft,
	'l': engine.IntentRight,
	'0': engine.IntentLineStart,
	'$': engine.IntentLineEnd,
}

func (d *keyDecoder) decode(ev backend.Event) action {
	switch ev.Key {
	case backend.KeyCtrlC, backend.KeyCtrlQ:
		d.count = 0
		return action{kind: actionQuit}
	case backend.KeyEscape:
		d.count = 0
		return action{}
	case backend.KeyRune:
		return d.decodeRune(ev.Rune)
	}

	if kind, ok := specialKeys[ev.Key]; ok {
		return d.intent(kind)
	}
	return action{}
}

func (d *keyDecoder) decodeRune(r rune) action {
	switch {
	case r == ':':
		d.count = 0
		return action{kind: actionCommandLine}
	case r == 'q':
		d.count = 0
		return action{kind: actionQuit}
	case r == 'g':
		d.count = 0
		return action{kind: actionGoTo, line: 0}
	case r == 'G':
		// 5G goes to line 5; a bare G to the last line.
		line := lastLine
		if d.count > 0 {
			line = d.count - 1
		}
		d.count = 0
		return action{kind: actionGoTo, line: line}
	case r >= '1' && r <= '9', r == '0' && d.count > 0:
		d.count = min(d.count*10+int(r-'0'), maxCount)
		return action{}
	}

	if kind, ok := runeKeys[r]; ok {
		return d.intent(kind)
	}
	d.count = 0
	return action{}
}

func (d *keyDecoder) intent(kind engine.IntentKind) action {
	a := action{kind: actionIntent, intent: engine.Intent{Kind: kind, Count: d.count}}
	d.count = 0
	return a
}
