/*
Package binding implements the declarative binding core: definitions collect
named component descriptors, materialization turns them into bound components
on a per-instance basis, a single layout pass arranges them, and the session
rehydrator re-populates source-backed components every time the collaborator
runtime reports a session (re)start.

The package never talks to a concrete UI toolkit; everything flows through
the ports.Runtime driven port.
*/
package binding
