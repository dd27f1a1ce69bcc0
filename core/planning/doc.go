// Package planning exposes route sequencing and vehicle/driver assignment
// as a single service that reports every computation on an event bus.
package planning
