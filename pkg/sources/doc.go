/*
Package sources provides ready-made rehydration sources.

A source is any zero-argument function supplying the current model value for
a bound component (see binding.SourceFunc). Most applications write closures
over their own model; this package covers the common external backends.
*/
package sources
