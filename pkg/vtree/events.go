package vtree

// ListenerOptions configures how an event listener is installed on the
// materialized output.
type ListenerOptions struct {
	Capture bool
	Passive bool
	Once    bool

	// Scope is the execution scope the handler is invoked with. When nil,
	// installers resolve it to the node's owning live component.
	Scope any
}

// EventListener is an event-listener descriptor: event name, handler, and
// installation options. Installation onto a real interactive surface is
// the reconciler's responsibility; this layer only records descriptors in
// order.
type EventListener struct {
	Event   string
	Handler any
	Options ListenerOptions
}

// On creates an event-listener descriptor for the given event name.
func On(event string, handler any) EventListener {
	return EventListener{Event: event, Handler: handler}
}

// OnOpts creates a descriptor with explicit options.
func OnOpts(event string, handler any, opts ListenerOptions) EventListener {
	return EventListener{Event: event, Handler: handler, Options: opts}
}

// OnClick handles click events.
func OnClick(handler any) EventListener { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventListener { return On("dblclick", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventListener { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventListener { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventListener { return On("submit", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventListener { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventListener { return On("keyup", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventListener { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventListener { return On("blur", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventListener { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventListener { return On("mouseleave", handler) }

// OnScroll handles scroll events.
func OnScroll(handler any) EventListener { return On("scroll", handler) }
