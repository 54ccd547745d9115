/*
Package ports defines the driven ports (interfaces) for the stateboard
application.

These interfaces decouple the machine and its transport from storage
implementations. The machine core never calls a store directly: transport
handlers perform the I/O through these ports, then feed the outcome into
events.

# Key Interfaces

  - UserStore: account records and credentials.
  - TaskStore: task records and partial updates.
*/
package ports
