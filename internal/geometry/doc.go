package geometry

// Package geometry implements the window drag/resize interaction logic:
// edge classification around the frame border, drag sessions for moving and
// resizing, minimum-size clamping, and aspect-ratio-locked resizing. It is
// pure bookkeeping and math with no toolkit dependency; the UI layer feeds
// it pointer events and applies the rectangles it produces.
