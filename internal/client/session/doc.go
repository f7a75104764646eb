// Package session holds everything the client knows about "who is logged in
// and what can they do": the Session record returned by the backend on
// sign-in, the durable single-slot store it survives restarts in, the
// in-memory Manager owning it for the life of the process, and the pure role
// predicates the access guards are built on.
package session
