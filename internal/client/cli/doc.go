// Package cli implements the interactive terminal client for the leave
// portal. Commands are the routes of the application: each one is listed in
// the route table with a guard, and the guard is re-evaluated against the
// current session on every dispatch before the handler runs.
package cli
