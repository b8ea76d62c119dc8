package notif

import (
	"context"
	"log"
	"sync"

	"notistack/internal/common"
)

// Broadcaster fans read-state events out to the subscribed session
// observers. Delivery is best-effort: a full channel drops the event, and
// nothing is persisted or retried.
type Broadcaster struct {
	observers    map[string]common.Observer
	eventChannel chan common.ReadStateEvent
	workerPool   int
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewBroadcaster(workerPoolSize, bufferSize int) *Broadcaster {
	if workerPoolSize <= 0 {
		workerPoolSize = 5
	}
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	ctx, cancel := context.WithCancel(context.Background())

	b := &Broadcaster{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.ReadStateEvent, bufferSize),
		workerPool:   workerPoolSize,
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workerPoolSize; i++ {
		b.wg.Add(1)
		go b.processEvents()
	}

	return b
}

func (b *Broadcaster) Subscribe(observer common.Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (b *Broadcaster) Unsubscribe(observer common.Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

func (b *Broadcaster) Notify(event common.ReadStateEvent) {
	b.mu.RLock()
	observers := make([]common.Observer, 0, len(b.observers))
	for _, obs := range b.observers {
		observers = append(observers, obs)
	}
	b.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (b *Broadcaster) NotifyAsync(event common.ReadStateEvent) {
	select {
	case b.eventChannel <- event:

	case <-b.ctx.Done():
		return
	default:
		log.Printf("Read-event channel full, dropping event for user %d", event.UserID)
	}
}

func (b *Broadcaster) processEvents() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChannel:
			b.Notify(event)
		case <-b.ctx.Done():
			return
		}
	}
}

func (b *Broadcaster) Shutdown() {
	b.cancel()
	b.wg.Wait()
	log.Println("Broadcaster shutdown complete")
}
