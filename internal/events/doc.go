// Package events carries change notifications out of the recruiting session.
//
// Handlers in the API layer emit a ChangeEvent after every successful
// mutation of the roster or the schedule. Consumers such as the audit log
// and the metrics collector register an EventHandler with the emitter and
// never see the session itself.
//
// The primary components are:
// - ChangeEvent: a single roster or schedule change
// - EventHandler: interface for components that consume events
// - EventEmitter: interface for components that publish events
package events
