package descriptor

import (
	"encoding/xml"
	"errors"
	"io"
)

// EventKind distinguishes the markup events consumed by [Read].
type EventKind int

const (
	EventOpen EventKind = iota
	EventText
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventOpen:
		return "open"
	case EventText:
		return "text"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is one markup event: an element opening with its attributes, a run
// of character data, or an element closing.
type Event struct {
	Attrs map[string]string
	Name  string
	Text  string
	Kind  EventKind
}

// OpenEvent returns an [EventOpen] for name. The attributes are given as
// alternating names and values; a trailing name without a value is ignored.
func OpenEvent(name string, attrs ...string) Event {
	m := make(map[string]string, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		m[attrs[i]] = attrs[i+1]
	}

	return Event{Kind: EventOpen, Name: name, Attrs: m}
}

// TextEvent returns an [EventText] carrying s.
func TextEvent(s string) Event { return Event{Kind: EventText, Text: s} }

// CloseEvent returns an [EventClose] for name.
func CloseEvent(name string) Event { return Event{Kind: EventClose, Name: name} }

// EventSource produces the markup events of one document. Next returns
// [io.EOF] after the last event.
type EventSource interface {
	Next() (Event, error)
}

type sliceSource struct {
	events []Event
}

// Events returns an [EventSource] that replays events in order.
func Events(events ...Event) EventSource {
	return &sliceSource{events: events}
}

func (s *sliceSource) Next() (Event, error) {
	if len(s.events) == 0 {
		return Event{}, io.EOF
	}

	ev := s.events[0]
	s.events = s.events[1:]

	return ev, nil
}

type xmlSource struct {
	dec *xml.Decoder
}

// NewXMLSource returns an [EventSource] that tokenizes an XML document.
// Element and attribute names are taken without their namespace prefix,
// and namespace-qualified attributes are dropped. Comments, processing
// instructions, and directives produce no events.
func NewXMLSource(r io.Reader) EventSource {
	return &xmlSource{dec: xml.NewDecoder(r)}
}

func (s *xmlSource) Next() (Event, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}

			return Event{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				if a.Name.Space == "" {
					attrs[a.Name.Local] = a.Value
				}
			}

			return Event{Kind: EventOpen, Name: t.Name.Local, Attrs: attrs}, nil

		case xml.EndElement:
			return Event{Kind: EventClose, Name: t.Name.Local}, nil

		case xml.CharData:
			return Event{Kind: EventText, Text: string(t)}, nil
		}
	}
}
