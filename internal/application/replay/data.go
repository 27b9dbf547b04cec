// Package replay records the per-frame input snapshots fed into the screen
// stack and plays them back, for reproducing input-dependent bugs (focus
// routing, menu flows) from a captured session.
package replay

import "github.com/younwookim/screenstack/internal/application/system"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	MU  bool `json:"mu,omitempty"`  // MenuUp
	MD  bool `json:"md,omitempty"`  // MenuDown
	MS  bool `json:"ms,omitempty"`  // MenuSelect
	MCN bool `json:"mcn,omitempty"` // MenuCancel
	P   bool `json:"p,omitempty"`   // Pause
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MC  bool `json:"mc,omitempty"`  // MouseClick
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func pack(frame int, in *system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		U:   in.Up,
		D:   in.Down,
		L:   in.Left,
		R:   in.Right,
		MU:  in.MenuUp,
		MD:  in.MenuDown,
		MS:  in.MenuSelect,
		MCN: in.MenuCancel,
		P:   in.Pause,
		MX:  in.MouseX,
		MY:  in.MouseY,
		MC:  in.MouseClick,
	}
}

func unpack(fi FrameInput, dst *system.InputState) {
	*dst = system.InputState{
		Up:         fi.U,
		Down:       fi.D,
		Left:       fi.L,
		Right:      fi.R,
		MenuUp:     fi.MU,
		MenuDown:   fi.MD,
		MenuSelect: fi.MS,
		MenuCancel: fi.MCN,
		Pause:      fi.P,
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseClick: fi.MC,
	}
}
