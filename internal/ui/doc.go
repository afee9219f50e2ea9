package ui

// Package ui contains the Fyne-based overlay widget: the translucent
// backdrop with star field and optional background image, the time display,
// the play/pause/reset controls, and the pointer plumbing that feeds the
// geometry controller. All UI strings are localized via Localization.
