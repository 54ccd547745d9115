/*
Package domain contains the core domain models for the stateboard machine.

It defines the fundamental entities shared by the machine definition, the
interpreter, the store adapters, and the HTTP transport. This package is kept
pure and free of I/O and external dependencies.

# Key Entities

  - Task / User: the records carried through the application context.
  - Context: the single mutable data payload the machine carries across states.
  - Event: a named, payload-bearing message sent to the interpreter.
  - StateValue / Snapshot: the externally visible (state, context) pair.
*/
package domain
