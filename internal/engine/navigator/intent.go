package navigator

import "fmt"

// IntentKind identifies a discrete navigation request.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentLineStart
	IntentLineEnd
	IntentPageUp
	IntentPageDown
)

var intentNames = map[IntentKind]string{
	IntentNone:      "none",
	IntentUp:        "up",
	IntentDown:      "down",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentLineStart: "line_start",
	IntentLineEnd:   "line_end",
	IntentPageUp:    "page_up",
	IntentPageDown:  "page_down",
}

// String returns the intent's name.
func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("IntentKind(%d)", uint8(k))
}

// ParseIntentKind returns the intent with the given name.
func ParseIntentKind(name string) (IntentKind, bool) {
	for k, n := range intentNames {
		if n == name && k != IntentNone {
			return k, true
		}
	}
	return IntentNone, false
}

// Intent is a navigation request from the input layer.
//
// Count is optional. For line and column moves it repeats the move; for
// page moves it is the scroll step. Zero means the default: one move, or
// the navigator's page step.
type Intent struct {
	Kind  IntentKind
	Count int
}

// String returns a string representation of the intent.
func (i Intent) String() string {
	if i.Count > 0 {
		return fmt.Sprintf("%s x%d", i.Kind, i.Count)
	}
	return i.Kind.String()
}

// Direction is the direction of a page scroll.
type Direction int8

const (
	Up   Direction = -1
	Down Direction = 1
)
