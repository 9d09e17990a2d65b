package sprite

import (
	"fmt"
)

// MaxSprites is the capacity of a Layer.
const MaxSprites = 65536

// Handle points to a sprite slot inside a Layer.
type Handle struct {
	index int
}

// Layer owns a slot-allocated table of sprite instances. Slots freed by
// Destroy are reused by the next Create; Snapshot produces the dense,
// draw-ordered view uploaded to the instance buffer.
type Layer struct {
	sprites []*Instance
	count   int
	highest int // highest live slot index, -1 when empty
}

func NewLayer() *Layer {
	return &Layer{
		sprites: make([]*Instance, MaxSprites),
		highest: -1,
	}
}

// Create adds a sprite to the layer and returns its handle.
func (l *Layer) Create(inst Instance) (Handle, error) {
	index, ok := l.firstEmpty()
	if !ok {
		return Handle{}, fmt.Errorf("the max number of sprites (%d) has been reached", MaxSprites)
	}
	if index > l.highest {
		l.highest = index
	}
	l.count++
	stored := inst
	l.sprites[index] = &stored
	return Handle{index: index}, nil
}

// Destroy removes the sprite behind the handle.
func (l *Layer) Destroy(handle Handle) error {
	if handle.index < 0 || handle.index >= MaxSprites || l.sprites[handle.index] == nil {
		return fmt.Errorf("no sprite exists with handle index %d", handle.index)
	}
	l.sprites[handle.index] = nil
	l.count--
	if handle.index == l.highest {
		l.highest = -1
		for idx := handle.index - 1; idx >= 0; idx-- {
			if l.sprites[idx] != nil {
				l.highest = idx
				break
			}
		}
	}
	return nil
}

// Set replaces the instance behind the handle.
func (l *Layer) Set(handle Handle, inst Instance) error {
	if handle.index < 0 || handle.index >= MaxSprites || l.sprites[handle.index] == nil {
		return fmt.Errorf("no sprite exists with handle index %d", handle.index)
	}
	*l.sprites[handle.index] = inst
	return nil
}

// Get returns a pointer to the instance behind the handle, valid until the
// sprite is destroyed.
func (l *Layer) Get(handle Handle) (*Instance, bool) {
	if handle.index < 0 || handle.index >= MaxSprites {
		return nil, false
	}
	inst := l.sprites[handle.index]
	return inst, inst != nil
}

func (l *Layer) Count() int {
	return l.count
}

// Snapshot appends the live instances in slot order to dst and returns it.
// The result is what a frame uploads; the layer itself is never read by the
// renderer mid-draw.
func (l *Layer) Snapshot(dst []Instance) []Instance {
	for idx := 0; idx <= l.highest; idx++ {
		if l.sprites[idx] != nil {
			dst = append(dst, *l.sprites[idx])
		}
	}
	return dst
}

func (l *Layer) firstEmpty() (int, bool) {
	if l.count == MaxSprites {
		return 0, false
	}
	for idx := 0; idx < l.highest; idx++ {
		if l.sprites[idx] == nil {
			return idx, true
		}
	}
	return l.highest + 1, true
}
