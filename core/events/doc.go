// Package events defines what the planner publishes on its event bus.
//
// Available event types:
//   - RouteOptimized: a route was sequenced and checked
//   - AssignmentSearched: a vehicle/driver pairing search finished
package events
