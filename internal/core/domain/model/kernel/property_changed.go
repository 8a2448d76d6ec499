package kernel

// PropertyChangedHandler receives the object that changed and the name of the
// property that changed on it.
type PropertyChangedHandler func(sender any, propertyName string)

// PropertyChangedNotifier is implemented by models that storefront data
// binding can observe.
type PropertyChangedNotifier interface {
	// Subscribe registers h and returns a function that removes it again.
	Subscribe(h PropertyChangedHandler) (unsubscribe func())
}

// PropertyChanged is a synchronous handler registry meant to be held by a
// model and exposed through its own Subscribe method. The zero value is ready
// to use. It is not safe for concurrent use.
type PropertyChanged struct {
	subscriptions []subscription
	nextID        uint64
}

type subscription struct {
	id      uint64
	handler PropertyChangedHandler
}

// Subscribe registers h. Handlers run in subscription order. A nil handler is
// ignored. The returned function may be called any number of times.
func (p *PropertyChanged) Subscribe(h PropertyChangedHandler) func() {
	if h == nil {
		return func() {}
	}

	p.nextID++
	id := p.nextID
	p.subscriptions = append(p.subscriptions, subscription{id: id, handler: h})

	return func() {
		for i, s := range p.subscriptions {
			if s.id == id {
				p.subscriptions = append(p.subscriptions[:i:i], p.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every handler subscribed at the time of the call, before
// returning. Handlers added or removed during dispatch take effect on the
// next Notify.
func (p *PropertyChanged) Notify(sender any, propertyName string) {
	if len(p.subscriptions) == 0 {
		return
	}

	snapshot := make([]subscription, len(p.subscriptions))
	copy(snapshot, p.subscriptions)
	for _, s := range snapshot {
		s.handler(sender, propertyName)
	}
}

// Len reports how many handlers are currently subscribed.
func (p *PropertyChanged) Len() int {
	return len(p.subscriptions)
}
