// Package style maps named style classes to colors and keeps that mapping
// in sync with an external raw-style source.
//
// A [Registry] holds at most one [Class] per name. Upsert replaces the whole
// record: slots missing from the new value are cleared, never merged.
//
// A [Watcher] rescans a [Source] for the classes it watches, parses the raw
// property strings with [ParseColor] and upserts the results. Listeners are
// notified at most once per rescan, however many values changed.
package style
