package platform

// Package platform contains OS and filesystem glue: loading background
// images from disk and rescaling them to cover the window. It is the only
// package with an I/O failure surface; everything else in the app is total.
