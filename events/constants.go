package events

// Priority bands for subscriptions. Higher priority fires earlier; the
// default for a subscription that has no ordering needs is PriorityNormal.
// Bands leave room between them so a listener can slot relative to another
// without renumbering everything.
const (
	PriorityFirst  = 1000  // Must run before everything else
	PriorityHigh   = 100   // Runs before normal listeners
	PriorityNormal = 0     // Default
	PriorityLow    = -100  // Runs after normal listeners
	PriorityLast   = -1000 // Cleanup, auditing, logging
)
