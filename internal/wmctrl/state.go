package wmctrl

import (
	"fmt"
	"strings"
)

// Action says how a window state property should be changed.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionToggle Action = "toggle"
)

// Property is a _NET_WM_STATE property understood by wmctrl -b.
type Property string

const (
	PropModal         Property = "modal"
	PropSticky        Property = "sticky"
	PropMaximizedVert Property = "maximized_vert"
	PropMaximizedHorz Property = "maximized_horz"
	PropShaded        Property = "shaded"
	PropSkipTaskbar   Property = "skip_taskbar"
	PropSkipPager     Property = "skip_pager"
	PropHidden        Property = "hidden"
	PropFullscreen    Property = "fullscreen"
	PropAbove         Property = "above"
	PropBelow         Property = "below"
)

// ParseAction parses a state action name.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionAdd, ActionRemove, ActionToggle:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown state action %q (want add, remove or toggle)", s)
}

// ParseProperty parses a window state property name.
func ParseProperty(s string) (Property, error) {
	switch Property(s) {
	case PropModal, PropSticky, PropMaximizedVert, PropMaximizedHorz,
		PropShaded, PropSkipTaskbar, PropSkipPager, PropHidden,
		PropFullscreen, PropAbove, PropBelow:
		return Property(s), nil
	}
	return "", fmt.Errorf("unknown window state property %q", s)
}

// State is a window state change request, formatted as the STARG argument
// of wmctrl -b: "action,prop1[,prop2]". wmctrl accepts at most two
// properties per invocation.
type State struct {
	Action     Action
	Properties []Property
}

// NewState builds a state change request for a single property.
func NewState(action Action, prop Property) State {
	return State{Action: action, Properties: []Property{prop}}
}

// NewStatePair builds a state change request touching two properties at
// once, e.g. maximized_vert plus maximized_horz.
func NewStatePair(action Action, first, second Property) State {
	return State{Action: action, Properties: []Property{first, second}}
}

// Validate checks the request against wmctrl's STARG constraints.
func (s State) Validate() error {
	switch s.Action {
	case ActionAdd, ActionRemove, ActionToggle:
	default:
		return fmt.Errorf("invalid state action %q", s.Action)
	}
	if len(s.Properties) == 0 {
		return fmt.Errorf("state change requires at least one property")
	}
	if len(s.Properties) > 2 {
		return fmt.Errorf("wmctrl -b accepts at most two properties, got %d", len(s.Properties))
	}
	return nil
}

// String renders the STARG argument.
func (s State) String() string {
	parts := make([]string, 0, 1+len(s.Properties))
	parts = append(parts, string(s.Action))
	for _, p := range s.Properties {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, ",")
}
