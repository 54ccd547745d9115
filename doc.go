/*
Package stateboard runs the task-management application state machine.

The machine models the full user journey — authentication, dashboard, task
operations, profile — as a single declarative definition (pkg/machine). A
Service owns the authoritative interpreter instance for the process and,
optionally, a mirrored instance kept in step by replaying the same event
stream (pkg/mirror).

Transports and stores live in pkg/adapters; they perform all I/O before an
event is dispatched, so the machine itself stays pure.
*/
package stateboard
