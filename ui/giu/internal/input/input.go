package input

type Action int

const (
	ActionNone Action = iota
	ActionDelete
	ActionNext
	ActionRotate
	ActionQuit
)

func (s Action) String() string {
	switch s {
	case ActionDelete:
		return "Delete"
	case ActionNext:
		return "Next"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	}
	return "None"
}

type Shortcut struct {
	Keys   []int
	Action Action
}

// KeyPressed must report only fresh presses. Key repeat of a held key
// must not count as a new press.
type KeyPressed func(key int) bool

// Resolve returns the action of the first shortcut with a pressed key. At
// most one action is triggered per frame and none while blocked, e.g. when a
// message box is open.
func Resolve(shortcuts []Shortcut, pressed KeyPressed, blocked bool) Action {
	if blocked {
		return ActionNone
	}
	for _, shortcut := range shortcuts {
		for _, key := range shortcut.Keys {
			if pressed(key) {
				return shortcut.Action
			}
		}
	}
	return ActionNone
}
