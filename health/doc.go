// Package health provides the status model used to judge a Spring Boot
// Actuator target.
//
// Status values follow the Nagios plugin convention: the numeric value of a
// Status is the exit code the plugin terminates with. Statuses are folded by
// severity, where OK < WARNING < UNKNOWN < CRITICAL, so a CRITICAL result is
// never downgraded by a later check.
//
// # Core Concepts
//
// A Checker is any component that can report its status. Actuator health
// documents carry one status string per component (diskSpace, db, redis, ...);
// ComponentCheckers turns each known component found in a document into a
// Checker.
//
// # Aggregating
//
// Aggregator runs registered checkers in registration order and folds their
// results:
//
//	agg := health.NewAggregator(5 * time.Second)
//	for _, c := range health.ComponentCheckers(doc, health.DefaultComponents) {
//	    agg.Register(c)
//	}
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
package health
