package session

// Package session implements the control flow around the selection engine:
// the per-URL state machine (probe, classify, offer, download), the front-end
// contract both shells implement, and the ordered event stream carrying
// status and progress back to the user. Every per-URL error is converted to
// an event here; nothing short of a user-initiated exit stops the loop.
