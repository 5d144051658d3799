package game

type playerState struct {
	busy       uint64
	regions    map[RegionID]struct{}
	cursor     RegionID
	goldenUsed bool
}

// registry keeps per-player bookkeeping. States are created on first write,
// so a game declared with millions of players costs nothing until they play.
type registry struct {
	count      uint32
	maxRegions uint32
	states     map[PlayerID]*playerState
}

func newRegistry(count, maxRegions uint32) *registry {
	return &registry{
		count:      count,
		maxRegions: maxRegions,
		states:     make(map[PlayerID]*playerState),
	}
}

func (r *registry) valid(p PlayerID) bool {
	return p != NoPlayer && uint32(p) <= r.count
}

// peek returns the state of p, or nil if p has never played.
func (r *registry) peek(p PlayerID) *playerState {
	return r.states[p]
}

func (r *registry) state(p PlayerID) *playerState {
	s, ok := r.states[p]
	if !ok {
		s = &playerState{regions: make(map[RegionID]struct{})}
		r.states[p] = s
	}
	return s
}

func (r *registry) busy(p PlayerID) uint64 {
	if s := r.peek(p); s != nil {
		return s.busy
	}
	return 0
}

func (r *registry) addBusy(p PlayerID)    { r.state(p).busy++ }
func (r *registry) removeBusy(p PlayerID) { r.state(p).busy-- }

func (r *registry) regionCount(p PlayerID) uint32 {
	if s := r.peek(p); s != nil {
		return uint32(len(s.regions))
	}
	return 0
}

func (r *registry) allRegionsUsed(p PlayerID) bool {
	return r.regionCount(p) == r.maxRegions
}

func (r *registry) goldenUsed(p PlayerID) bool {
	if s := r.peek(p); s != nil {
		return s.goldenUsed
	}
	return false
}

func (r *registry) markGoldenUsed(p PlayerID) { r.state(p).goldenUsed = true }

// allocate marks the first free region id at or after the cursor (circularly)
// as used and moves the cursor past it. p must have a free id left.
func (r *registry) allocate(p PlayerID) RegionID {
	s := r.state(p)
	limit := RegionID(r.maxRegions)
	id := s.cursor % limit
	for {
		if _, used := s.regions[id]; !used {
			break
		}
		id = (id + 1) % limit
	}
	s.regions[id] = struct{}{}
	s.cursor = (id + 1) % limit
	return id
}

// claim marks a specific id as used again. It is the exact inverse of release.
func (r *registry) claim(p PlayerID, id RegionID) {
	r.state(p).regions[id] = struct{}{}
}

// release frees id. The cursor is only a hint and is left alone.
func (r *registry) release(p PlayerID, id RegionID) {
	delete(r.state(p).regions, id)
}

func (r *registry) inUse(p PlayerID, id RegionID) bool {
	s := r.peek(p)
	if s == nil {
		return false
	}
	_, ok := s.regions[id]
	return ok
}

func (r *registry) totalBusy() uint64 {
	var sum uint64
	for _, s := range r.states {
		sum += s.busy
	}
	return sum
}

func (r *registry) othersHaveBusy(p PlayerID) bool {
	for id, s := range r.states {
		if id != p && s.busy > 0 {
			return true
		}
	}
	return false
}

// highestActive returns the largest player id owning at least one cell, or
// NoPlayer when the board is empty.
func (r *registry) highestActive() PlayerID {
	best := NoPlayer
	for id, s := range r.states {
		if s.busy > 0 && id > best {
			best = id
		}
	}
	return best
}
