package selection

// Package selection implements the decision engine: ranking and pairing the
// normalized stream catalog into a short menu of distinct offers, and mapping
// a chosen offer or playlist tier into a declarative download plan.
