package killring

// Capacity is the fixed number of slots in the ring.
const Capacity = 64

// KillRing is a bounded circular buffer of owned text chunks with
// yank/yank-pop cycling. The zero value is an empty, ready-to-use ring.
type KillRing struct {
	entries       [Capacity][]byte
	count         int
	writeIdx      int
	pasteIdx      int
	pasteUpToDate bool
}

// New creates an empty kill ring.
func New() *KillRing {
	return &KillRing{}
}

func (k *KillRing) latestIdx() int {
	return (k.writeIdx - 1 + Capacity) % Capacity
}

// Copy stores a new chunk, making it the most recent entry. Copying is
// not a paste action, so it clears paste-up-to-date.
func (k *KillRing) Copy(data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	k.entries[k.writeIdx] = buf
	k.pasteIdx = k.writeIdx
	k.writeIdx = (k.writeIdx + 1) % Capacity
	if k.count < Capacity {
		k.count++
	}
	k.pasteUpToDate = false
}

// Paste returns the most recently copied chunk and marks paste-up-to-date,
// so an immediately following PasteOlder cycles to the prior entry rather
// than re-pasting the newest one.
func (k *KillRing) Paste() ([]byte, bool) {
	if k.count == 0 {
		return nil, false
	}
	k.pasteIdx = k.latestIdx()
	k.pasteUpToDate = true
	return k.entries[k.pasteIdx], true
}

// PasteOlder replaces the text from the previous paste with the next-older
// ring entry when the prior action was itself a paste; otherwise it
// behaves like a fresh Paste.
func (k *KillRing) PasteOlder() ([]byte, bool) {
	if k.count == 0 {
		return nil, false
	}
	if !k.pasteUpToDate {
		return k.Paste()
	}
	age := (k.latestIdx() - k.pasteIdx + Capacity) % Capacity
	if age+1 >= k.count {
		// Already at the oldest available entry; stay put.
		return k.entries[k.pasteIdx], true
	}
	k.pasteIdx = (k.pasteIdx - 1 + Capacity) % Capacity
	k.pasteUpToDate = true
	return k.entries[k.pasteIdx], true
}

// Invalidate clears paste-up-to-date. Callers invoke this after any
// non-paste action so a subsequent PasteOlder behaves as a fresh paste.
func (k *KillRing) Invalidate() {
	k.pasteUpToDate = false
}

// PasteUpToDate reports whether the last action was a paste.
func (k *KillRing) PasteUpToDate() bool {
	return k.pasteUpToDate
}

// Len returns the number of valid entries (<= Capacity).
func (k *KillRing) Len() int {
	return k.count
}
