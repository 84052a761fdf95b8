package clist

// activeSegments tracks one open journal segment per worker, ordered by
// which was first written to. Close and rotation sweeps need the
// oldest segment repeatedly, so this is a small indexed binary heap
// keyed by workerID rather than a general-purpose priority queue: the
// only operations Runner ever needs are "does this worker have an open
// segment", "replace/insert its segment", "drop it", and "give me the
// oldest one".
type activeSegments struct {
	entries []*segmentEntry
	byID    map[int32]*segmentEntry
}

type segmentEntry struct {
	workerID int32
	segment  activeSegment
	index    int
}

func newActiveSegments() *activeSegments {
	return &activeSegments{
		byID: make(map[int32]*segmentEntry),
	}
}

// get reports the worker's open segment, if any.
func (a *activeSegments) get(workerID int32) (activeSegment, bool) {
	e, ok := a.byID[workerID]
	if !ok {
		return activeSegment{}, false
	}
	return e.segment, true
}

// set inserts the worker's segment, or updates it and re-heapifies if
// the worker already has one open.
func (a *activeSegments) set(workerID int32, seg activeSegment) {
	if e, ok := a.byID[workerID]; ok {
		e.segment = seg
		a.down(e.index)
		a.up(e.index)
		return
	}
	e := &segmentEntry{workerID: workerID, segment: seg, index: len(a.entries)}
	a.entries = append(a.entries, e)
	a.byID[workerID] = e
	a.up(e.index)
}

// remove drops the worker's open segment, if any.
func (a *activeSegments) remove(workerID int32) {
	e, ok := a.byID[workerID]
	if !ok {
		return
	}

	last := len(a.entries) - 1
	if e.index != last {
		a.swap(e.index, last)
		a.entries = a.entries[:last]
		a.down(e.index)
		a.up(e.index)
	} else {
		a.entries = a.entries[:last]
	}
	delete(a.byID, workerID)
}

// peek returns the worker whose segment was opened earliest, without
// removing it.
func (a *activeSegments) peek() (workerID int32, seg activeSegment, ok bool) {
	if len(a.entries) == 0 {
		return 0, activeSegment{}, false
	}
	e := a.entries[0]
	return e.workerID, e.segment, true
}

func (a *activeSegments) less(i, j int) bool {
	return byFirstWritten(a.entries[i].segment, a.entries[j].segment)
}

func (a *activeSegments) swap(i, j int) {
	a.entries[i], a.entries[j] = a.entries[j], a.entries[i]
	a.entries[i].index = i
	a.entries[j].index = j
}

func (a *activeSegments) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !a.less(i, parent) {
			break
		}
		a.swap(i, parent)
		i = parent
	}
}

func (a *activeSegments) down(i int) {
	for {
		smallest := i
		if left := 2*i + 1; left < len(a.entries) && a.less(left, smallest) {
			smallest = left
		}
		if right := 2*i + 2; right < len(a.entries) && a.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		a.swap(i, smallest)
		i = smallest
	}
}
