package health

import (
	"context"
	"fmt"
)

// DefaultComponents lists the actuator health indicators inspected when no
// explicit component list is configured.
var DefaultComponents = []string{
	"cassandra", "diskSpace", "dataSource", "elasticsearch", "jms", "mail",
	"mongo", "rabbit", "redis", "solr", "db", "vault",
}

// ComponentSource exposes component status strings of a health document.
type ComponentSource interface {
	// Component returns the raw status of the named component and whether
	// the component is present.
	Component(name string) (string, bool)
}

// ComponentChecker reports the status of a single actuator component.
type ComponentChecker struct {
	name   string
	status string
}

// Name returns the component name.
func (c *ComponentChecker) Name() string {
	return c.name
}

// Check maps the component status to a Result.
func (c *ComponentChecker) Check(ctx context.Context) Result {
	return ActuatorResult(c.status, fmt.Sprintf("%s status is %s", c.name, c.status))
}

// ComponentCheckers returns a checker for every name in names that is present
// in src, preserving the order of names.
func ComponentCheckers(src ComponentSource, names []string) []Checker {
	checkers := make([]Checker, 0, len(names))
	for _, name := range names {
		status, ok := src.Component(name)
		if !ok {
			continue
		}
		checkers = append(checkers, &ComponentChecker{name: name, status: status})
	}
	return checkers
}
