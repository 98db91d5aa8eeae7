package worker

import (
	"sync"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
)

// feed fans frames out to subscribers. Sends never block: a subscriber that
// falls more than config.FrameBuffer frames behind misses frames.
type feed struct {
	lock sync.Mutex
	subs map[int]chan rules.Snapshot
	next int
}

// Subscribe returns a channel of frames and a function to stop receiving
// them. The channel is closed once cancel is called.
func (f *feed) Subscribe() (<-chan rules.Snapshot, func()) {
	ch := make(chan rules.Snapshot, config.FrameBuffer)

	f.lock.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.lock.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.lock.Lock()
			delete(f.subs, id)
			f.lock.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (f *feed) publish(frame rules.Snapshot) {
	f.lock.Lock()
	defer f.lock.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- frame:
		default:
			framesDropped.Inc()
		}
	}
}
