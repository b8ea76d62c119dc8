package common

import "context"

type Observer interface {
	Update(event ReadStateEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event ReadStateEvent)
	NotifyAsync(event ReadStateEvent)
}

// DetailRenderer produces the display payload for one notifiable object.
// Each registered notifiable type supplies its own implementation.
type DetailRenderer interface {
	Render(ctx context.Context, notifiableID uint64) (NotificationDetails, error)
}
