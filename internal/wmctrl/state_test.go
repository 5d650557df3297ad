package wmctrl

import "testing"

func TestStateString(t *testing.T) {
	cases := []struct {
		name  string
		state State
		want  string
	}{
		{name: "add fullscreen", state: NewState(ActionAdd, PropFullscreen), want: "add,fullscreen"},
		{name: "remove hidden", state: NewState(ActionRemove, PropHidden), want: "remove,hidden"},
		{
			name:  "toggle maximize pair",
			state: NewStatePair(ActionToggle, PropMaximizedVert, PropMaximizedHorz),
			want:  "toggle,maximized_vert,maximized_horz",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.String(); got != tc.want {
				t.Fatalf("State.String()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestStateValidate(t *testing.T) {
	cases := []struct {
		name    string
		state   State
		wantErr bool
	}{
		{name: "valid single", state: NewState(ActionAdd, PropAbove)},
		{name: "valid pair", state: NewStatePair(ActionRemove, PropSkipTaskbar, PropSkipPager)},
		{name: "unknown action", state: State{Action: "flip", Properties: []Property{PropSticky}}, wantErr: true},
		{name: "no properties", state: State{Action: ActionAdd}, wantErr: true},
		{
			name: "three properties",
			state: State{
				Action:     ActionAdd,
				Properties: []Property{PropModal, PropSticky, PropShaded},
			},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.state.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err=%v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTransformationString(t *testing.T) {
	cases := []struct {
		name string
		tr   Transformation
		want string
	}{
		{name: "default gravity", tr: NewTransformation(0, 0, 960, 540), want: "0,0,0,960,540"},
		{name: "keep size", tr: NewTransformation(100, 50, -1, -1), want: "0,100,50,-1,-1"},
		{name: "explicit gravity", tr: Transformation{Gravity: 5, X: 1, Y: 2, Width: 3, Height: 4}, want: "5,1,2,3,4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tr.String(); got != tc.want {
				t.Fatalf("Transformation.String()=%q, want %q", got, tc.want)
			}
		})
	}
}
