package session

import "sync"

// Visibility is the foreground state reported by a platform.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

// FocusSource reports when the client regains focus.
type FocusSource interface {
	OnFocus(fn func()) (unsubscribe func())
}

// VisibilitySource reports foreground/background transitions.
type VisibilitySource interface {
	OnVisibilityChange(fn func(Visibility)) (unsubscribe func())
}

// ReturnHandler is told that the user may be back from the UPI app.
type ReturnHandler interface {
	OnPossibleReturn() bool
}

var _ ReturnHandler = (*Controller)(nil)

// Listen forwards return signals from platform to h. The platform may
// implement FocusSource, VisibilitySource, both or neither. Only a change to
// Visible counts. Duplicate signals reach h as-is; h ignores the extra ones.
func Listen(platform any, h ReturnHandler) (stop func()) {
	var stops []func()
	if fs, ok := platform.(FocusSource); ok {
		stops = append(stops, fs.OnFocus(func() {
			h.OnPossibleReturn()
		}))
	}
	if vs, ok := platform.(VisibilitySource); ok {
		stops = append(stops, vs.OnVisibilityChange(func(v Visibility) {
			if v == Visible {
				h.OnPossibleReturn()
			}
		}))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, s := range stops {
				s()
			}
		})
	}
}
