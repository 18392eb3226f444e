package model

// Package model holds the progress bookkeeping behind the multi-section bar:
// per-section values, the shared capacity and the clamping rule that keeps
// the combined progress inside it. It has no Fyne dependency so the rules
// can be tested without a canvas.
