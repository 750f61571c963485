package actuator

import (
	"encoding/json"
	"sort"

	"github.com/Jeffail/gabs/v2"
)

// Document is a parsed actuator response.
type Document struct {
	URL         string
	StatusCode  int
	ContentType string
	Version     int

	root *gabs.Container
}

// ParseDocument parses body as a document of the given schema version.
func ParseDocument(body []byte, version int) (*Document, error) {
	root, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, err
	}
	return &Document{Version: version, root: root}, nil
}

// Container returns the root JSON container.
func (d *Document) Container() *gabs.Container {
	return d.root
}

// Health is a view over a health document.
type Health struct {
	doc *Document
}

// NewHealth wraps doc as a health document.
func NewHealth(doc *Document) *Health {
	return &Health{doc: doc}
}

// Version returns the schema version of the document.
func (h *Health) Version() int {
	return h.doc.Version
}

// Status returns the top-level status string, or "" when absent.
func (h *Health) Status() string {
	s, _ := h.doc.root.S("status").Data().(string)
	return s
}

// Component returns the status of the named component and whether the
// component is present. A component without a status string reports "".
func (h *Health) Component(name string) (string, bool) {
	c := h.components().S(name)
	if c == nil {
		return "", false
	}
	if _, ok := c.Data().(map[string]any); !ok {
		return "", false
	}
	s, _ := c.S("status").Data().(string)
	return s, true
}

// ComponentNames returns the names of all components, sorted.
func (h *Health) ComponentNames() []string {
	var names []string
	for name, c := range h.components().ChildrenMap() {
		if _, ok := c.Data().(map[string]any); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// components returns the container holding component entries:
// v1 keeps them at the top level, v2 nests them under "components" (2.2+),
// "details" (2.0/2.1) or an object-valued "status", v3 under "components".
// Documents lacking the nested container fall back to the top level.
func (h *Health) components() *gabs.Container {
	root := h.doc.root
	if h.doc.Version == 1 {
		return root
	}

	keys := []string{"components"}
	if h.doc.Version == 2 {
		keys = append(keys, "details", "status")
	}
	for _, key := range keys {
		if c := root.S(key); c != nil {
			if _, ok := c.Data().(map[string]any); ok {
				return c
			}
		}
	}
	return root
}

// Measurement is one statistic of a named metric.
type Measurement struct {
	Statistic string
	Value     float64
}

// Metric is a view over a metrics document.
type Metric struct {
	name string
	doc  *Document
}

// NewMetric wraps doc as the metric name. Version 1 documents use an empty name.
func NewMetric(name string, doc *Document) *Metric {
	return &Metric{name: name, doc: doc}
}

// Name returns the requested metric name.
func (m *Metric) Name() string {
	return m.name
}

// Version returns the schema version of the document.
func (m *Metric) Version() int {
	return m.doc.Version
}

// Values returns the numeric entries of a flat version 1 metrics document.
func (m *Metric) Values() map[string]float64 {
	children := m.doc.root.ChildrenMap()
	values := make(map[string]float64, len(children))
	for key, c := range children {
		if v, ok := toFloat(c.Data()); ok {
			values[key] = v
		}
	}
	return values
}

// Measurements returns the measurements list of a version 2/3 metric.
// Entries without a numeric value are skipped.
func (m *Metric) Measurements() []Measurement {
	list := m.doc.root.S("measurements")
	if list == nil {
		return nil
	}

	var out []Measurement
	for _, c := range list.Children() {
		v, ok := toFloat(c.S("value").Data())
		if !ok {
			continue
		}
		stat, _ := c.S("statistic").Data().(string)
		out = append(out, Measurement{Statistic: stat, Value: v})
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
