package loop

import (
	"torus-snake/game"
	"torus-snake/game/types"
)

// Sink receives display updates. Calls are serialized; implementations must
// not call Start or Stop on the loop from inside a callback.
type Sink interface {
	OnReset(size int, snap game.Snapshot)
	OnUpdate(snap game.Snapshot, size int)
	OnGameOver()
}

// InputSource delivers direction commands to the handler it is bound to.
type InputSource interface {
	Bind(onInput func(types.Direction))
}

// MultiSink forwards every call to each sink in order.
type MultiSink []Sink

func (m MultiSink) OnReset(size int, snap game.Snapshot) {
	for _, s := range m {
		s.OnReset(size, snap)
	}
}

func (m MultiSink) OnUpdate(snap game.Snapshot, size int) {
	for _, s := range m {
		s.OnUpdate(snap, size)
	}
}

func (m MultiSink) OnGameOver() {
	for _, s := range m {
		s.OnGameOver()
	}
}

// MultiInput binds one handler to several input sources.
type MultiInput []InputSource

func (m MultiInput) Bind(onInput func(types.Direction)) {
	for _, in := range m {
		in.Bind(onInput)
	}
}

// InputFunc lets a host that calls Loop.OnInput directly satisfy InputSource.
type InputFunc func(onInput func(types.Direction))

func (f InputFunc) Bind(onInput func(types.Direction)) {
	f(onInput)
}
