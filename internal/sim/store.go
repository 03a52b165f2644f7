package sim

// Store owns every agent record and static prop handle of a session.
type Store struct {
	Fish    []*FishAgent
	Schools []*School
	Bubbles []*BubbleAgent
	Seaweed []*SeaweedSegment
	Props   []Handle
}

// Release frees every owned handle and empties the store.
func (s *Store) Release() {
	for _, f := range s.Fish {
		release(f.Handle)
	}
	for _, b := range s.Bubbles {
		release(b.Handle)
	}
	for _, sw := range s.Seaweed {
		release(sw.Handle)
	}
	for i := len(s.Props) - 1; i >= 0; i-- {
		release(s.Props[i])
	}
	*s = Store{}
}

func release(h Handle) {
	if h != nil {
		h.Release()
	}
}

type nopScene struct{}

func (nopScene) Spawn(Primitive) Handle { return nopHandle{} }

type nopHandle struct{}

func (nopHandle) SetTransform(Transform) {}
func (nopHandle) Release()               {}
