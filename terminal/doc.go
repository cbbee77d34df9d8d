// Package terminal runs the simulation in a tcell screen.
//
// The arena is mapped onto screen cells at a fixed cell scale with the y axis
// flipped. Terminals deliver key presses and repeats but no releases, so a key
// counts as held for a short window after its last event.
package terminal
