package data

import "sync"

type MarkerKind uint8

const (
	StartMarker MarkerKind = iota
	EndMarker
)

// Marker brackets structure in a stream of tokens, like an opening or
// closing XML tag. Markers are interned: asking twice for the same kind,
// namespace and name yields the same instance, so they compare with ==.
type Marker struct {
	kind      MarkerKind
	namespace string
	name      string
}

type markerKey struct {
	kind      MarkerKind
	namespace string
	name      string
}

// The registry lives for the whole process and is never evicted; grammars
// only ever ask for a bounded set of names.
var markers = struct {
	sync.Mutex
	m map[markerKey]*Marker
}{m: make(map[markerKey]*Marker)}

func intern(kind MarkerKind, namespace, name string) *Marker {
	key := markerKey{kind, namespace, name}
	markers.Lock()
	defer markers.Unlock()
	if m, ok := markers.m[key]; ok {
		return m
	}
	m := &Marker{kind: kind, namespace: namespace, name: name}
	markers.m[key] = m
	return m
}

// Start returns the marker opening the named structure.
func Start(namespace, name string) *Marker {
	return intern(StartMarker, namespace, name)
}

// End returns the marker closing the named structure.
func End(namespace, name string) *Marker {
	return intern(EndMarker, namespace, name)
}

func (m *Marker) Kind() MarkerKind {
	return m.kind
}

func (m *Marker) Namespace() string {
	return m.namespace
}

func (m *Marker) Name() string {
	return m.name
}

func (m *Marker) IsStart() bool {
	return m.kind == StartMarker
}

func (m *Marker) String() string {
	if m.kind == EndMarker {
		return "</" + m.namespace + ":" + m.name + ">"
	}
	return "<" + m.namespace + ":" + m.name + ">"
}

func (*Marker) isData() {}

// Data is anything that travels through a parse stream: a *Token or a
// *Marker.
type Data interface {
	isData()
}
