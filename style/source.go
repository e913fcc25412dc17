package style

// Element is an opaque handle to one item in an external source. Only the
// Source that produced it can interpret it.
type Element any

// StableElementID identifies an element across rescans. A source must
// return the same id for the same element for as long as it is watched.
type StableElementID string

// Trigger classifies an external change notification.
type Trigger uint8

const (
	// TriggerStylesheet fires when stylesheet-level rules change.
	TriggerStylesheet Trigger = iota
	// TriggerSubtree fires on attribute or structural changes in the
	// watched scope.
	TriggerSubtree
	// TriggerPreference fires when an external preference such as a
	// color-scheme setting toggles.
	TriggerPreference
)

// Triggers lists every trigger class a watcher subscribes to.
func Triggers() []Trigger {
	return []Trigger{TriggerStylesheet, TriggerSubtree, TriggerPreference}
}

func (t Trigger) String() string {
	switch t {
	case TriggerStylesheet:
		return "stylesheet"
	case TriggerSubtree:
		return "subtree"
	case TriggerPreference:
		return "preference"
	default:
		return "unknown"
	}
}

// Event is delivered to an Observer when its trigger fires.
type Event struct {
	Trigger Trigger
}

// Observer receives change notifications from a Source.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) { f(e) }

// Subscription is the handle returned by Source.Subscribe. Unsubscribe must
// be safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Source is the external raw-style source a Watcher reads from.
type Source interface {
	// ElementsWithClass returns the elements currently carrying class.
	ElementsWithClass(class string) ([]Element, error)

	// StableID returns the element's stable id, assigning one on first use.
	StableID(el Element) StableElementID

	// StyleProperty reads the element's current raw value for property.
	StyleProperty(el Element, property string) (string, bool)

	// Subscribe registers obs for notifications of the given trigger class.
	Subscribe(trigger Trigger, obs Observer) (Subscription, error)
}
