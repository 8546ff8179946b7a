package population

// SubscriptionHandle cancels one visibility subscription. Unsubscribe is
// idempotent.
type SubscriptionHandle interface {
	Unsubscribe()
}

// VisibilitySource reports when a container becomes visible.
type VisibilitySource interface {
	Subscribe(containerID string, onVisible func(containerID string)) SubscriptionHandle
}

type subscription struct {
	source     *ViewportSource
	seq        int
	id         string
	onVisible  func(string)
	wasVisible bool
	active     bool
}

func (s *subscription) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	delete(s.source.subs, s.seq)
}

// ViewportSource is a VisibilitySource fed by the renderer. Each call to Notify
// names the containers currently on screen; a subscriber is called when its
// container enters that set. A container already on screen when the
// subscription is made does not fire until it leaves and re-enters.
//
// ViewportSource is owned by the UI goroutine and is not safe for concurrent
// use.
type ViewportSource struct {
	subs    map[int]*subscription
	next    int
	visible map[string]bool
}

// NewViewportSource returns a source with nothing visible.
func NewViewportSource() *ViewportSource {
	return &ViewportSource{
		subs:    make(map[int]*subscription),
		visible: make(map[string]bool),
	}
}

// Subscribe registers onVisible for containerID.
func (v *ViewportSource) Subscribe(containerID string, onVisible func(string)) SubscriptionHandle {
	v.next++
	sub := &subscription{
		source:     v,
		seq:        v.next,
		id:         containerID,
		onVisible:  onVisible,
		wasVisible: v.visible[containerID],
		active:     true,
	}
	v.subs[sub.seq] = sub
	return sub
}

// Notify replaces the visible set and fires subscribers whose container just
// entered it, in subscription order.
func (v *ViewportSource) Notify(visible []string) {
	v.visible = make(map[string]bool, len(visible))
	for _, id := range visible {
		v.visible[id] = true
	}

	ordered := make([]*subscription, 0, len(v.subs))
	for seq := 1; seq <= v.next && len(ordered) < len(v.subs); seq++ {
		if sub, ok := v.subs[seq]; ok {
			ordered = append(ordered, sub)
		}
	}

	for _, sub := range ordered {
		now := v.visible[sub.id]
		entered := now && !sub.wasVisible
		sub.wasVisible = now
		if entered && sub.active {
			sub.onVisible(sub.id)
		}
	}
}

// Visible reports whether containerID was in the last notified set.
func (v *ViewportSource) Visible(containerID string) bool {
	return v.visible[containerID]
}

// Subscriptions returns the number of live subscriptions.
func (v *ViewportSource) Subscriptions() int {
	return len(v.subs)
}
