package cpu

// trapBufferSize is the depth of PC history kept by LoopTrap: enough to
// notice short repeating cycles (a branch-to-self, a two-instruction
// ping-pong) without flagging legitimate short loops that still make
// progress on registers or memory.
const trapBufferSize = 16

// LoopTrap is an optional helper for embedders driving a run loop over
// ExecuteStep: it watches the sequence of PC values across steps and
// reports when the second half of its history exactly mirrors the first,
// meaning PC has settled into a repeating cycle. The core itself never
// consults this — per the step driver's termination note, that's the
// embedder's call to make at step boundaries.
type LoopTrap struct {
	buffer [trapBufferSize]uint16
	index  int
	filled int
}

// Observe records pc as the most recent step's program counter.
func (t *LoopTrap) Observe(pc uint16) {
	t.buffer[t.index] = pc
	t.index = (t.index + 1) % trapBufferSize
	if t.filled < trapBufferSize {
		t.filled++
	}
}

// Tripped reports whether the most recent half of the observed history
// exactly repeats the half before it, i.e. PC has entered a cycle of
// length trapBufferSize/2 or a divisor of it.
func (t *LoopTrap) Tripped() bool {
	if t.filled < trapBufferSize {
		return false
	}
	half := trapBufferSize / 2
	for i := 0; i < half; i++ {
		a := t.buffer[(t.index+i)%trapBufferSize]
		b := t.buffer[(t.index+i+half)%trapBufferSize]
		if a != b {
			return false
		}
	}
	return true
}
