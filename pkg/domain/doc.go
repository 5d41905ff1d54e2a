/*
Package domain contains the core value types of the Vine binding layer.

These types are dependency-free by design. Descriptors, lifecycle states,
events and the error taxonomy are shared between the binding core, the
adapters and host applications without pulling in any adapter concern.
*/
package domain
