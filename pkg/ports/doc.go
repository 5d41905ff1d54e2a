/*
Package ports defines the driven port for the collaborator UI runtime.

The binding core never renders, serves or dispatches events itself; it talks
to an external runtime through the narrow Runtime interface defined here.
Adapters (headless, real toolkits) implement it.

# Key Interfaces

  - Runtime: widget construction, layout mounting, event pass-through,
    session-load notifications, value pushes and the blocking serve loop.
  - WidgetHandle: opaque per-widget reference handed back by the runtime.

RunRuntimeContract is an exported test suite that any Runtime implementation
should pass.
*/
package ports
