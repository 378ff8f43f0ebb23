// Package query implements the natural-language dispatcher: a linear state
// machine (IDLE → TOKENIZED → CLASSIFIED → SLOTTED → EXECUTED → RENDERED)
// that turns one line of free text into a shape or analyze operation
// against a per-session store (spec section 4.4).
//
// Any step may fail to ERROR_REPORTED, which is terminal: the dispatcher
// never retries and never retains partial state on failure.
package query
