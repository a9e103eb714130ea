package carousel

// Observer receives carousel notifications. Calls happen synchronously,
// inside the event that caused them.
type Observer interface {
	// OnPageTurn fires once per committed focus change with the new 1-based index.
	OnPageTurn(newIndex int)
	// OnThreshold fires when a drag first crosses the commit distance in a direction.
	OnThreshold(dir Direction)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnPageTurn(int)        {}
func (NopObserver) OnThreshold(Direction) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	PageTurn  func(newIndex int)
	Threshold func(dir Direction)
}

func (f ObserverFuncs) OnPageTurn(newIndex int) {
	if f.PageTurn != nil {
		f.PageTurn(newIndex)
	}
}

func (f ObserverFuncs) OnThreshold(dir Direction) {
	if f.Threshold != nil {
		f.Threshold(dir)
	}
}

// MultiObserver fans notifications out in order.
type MultiObserver []Observer

func (m MultiObserver) OnPageTurn(newIndex int) {
	for _, o := range m {
		if o != nil {
			o.OnPageTurn(newIndex)
		}
	}
}

func (m MultiObserver) OnThreshold(dir Direction) {
	for _, o := range m {
		if o != nil {
			o.OnThreshold(dir)
		}
	}
}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return NopObserver{}
	}
	return o
}
