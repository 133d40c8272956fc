package vtree

// NodeState is a shallow snapshot of the rendering-relevant state of an
// element or component placeholder: classes, attributes, properties,
// style, and event listeners. Snapshots exist so a reconciler can reapply
// state onto a live element reused across render passes without touching
// tree structure.
type NodeState struct {
	Classes   []string
	Attrs     map[string]string
	Props     Props
	Style     map[string]string
	Listeners []EventListener
}

// CopyState produces a snapshot of the node's rendering-relevant state.
// Slot lists stored in the props bag are structure, not render state, and
// are excluded.
func (n Node) CopyState() (*NodeState, error) {
	if err := n.kindErr(); err != nil {
		return nil, err
	}
	r := n.rec()
	s := &NodeState{
		Classes:   append([]string(nil), r.classes...),
		Attrs:     copyStringMap(r.attrs),
		Style:     copyStringMap(r.style),
		Listeners: append([]EventListener(nil), r.listeners...),
	}
	if len(r.props) > 0 {
		s.Props = make(Props, len(r.props))
		for k, v := range r.props {
			if _, isSlot := v.([]NodeID); isSlot {
				continue
			}
			s.Props[k] = v
		}
	}
	return s, nil
}

// MergeState combines the snapshot into the node's current state:
// array-valued state (classes, listeners) concatenates, map-valued state
// (attributes, properties, style) unions with the snapshot winning on
// key collision.
func (n Node) MergeState(s *NodeState) error {
	if err := n.kindErr(); err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	r := n.rec()
	r.classes = append(r.classes, s.Classes...)
	r.listeners = append(r.listeners, s.Listeners...)
	if len(s.Attrs) > 0 {
		if r.attrs == nil {
			r.attrs = make(map[string]string, len(s.Attrs))
		}
		for k, v := range s.Attrs {
			r.attrs[k] = v
		}
	}
	if len(s.Style) > 0 {
		if r.style == nil {
			r.style = make(map[string]string, len(s.Style))
		}
		for k, v := range s.Style {
			r.style[k] = v
		}
	}
	if len(s.Props) > 0 {
		if r.props == nil {
			r.props = make(Props, len(s.Props))
		}
		for k, v := range s.Props {
			r.props[k] = v
		}
	}
	return nil
}

// Merge combines o into s with the same rules as MergeState and returns
// s: arrays concatenate, maps union right-biased (o wins).
func (s *NodeState) Merge(o *NodeState) *NodeState {
	if o == nil {
		return s
	}
	s.Classes = append(s.Classes, o.Classes...)
	s.Listeners = append(s.Listeners, o.Listeners...)
	if len(o.Attrs) > 0 {
		if s.Attrs == nil {
			s.Attrs = make(map[string]string, len(o.Attrs))
		}
		for k, v := range o.Attrs {
			s.Attrs[k] = v
		}
	}
	if len(o.Style) > 0 {
		if s.Style == nil {
			s.Style = make(map[string]string, len(o.Style))
		}
		for k, v := range o.Style {
			s.Style[k] = v
		}
	}
	if len(o.Props) > 0 {
		if s.Props == nil {
			s.Props = make(Props, len(o.Props))
		}
		for k, v := range o.Props {
			s.Props[k] = v
		}
	}
	return s
}

func copyStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
