// Package state holds each screen's projection of the fetched catalog.
//
// # Overview
//
// Two pieces live here. Store is a mutex-guarded snapshot of the last
// successful catalog fetch, shared between the fetch commands (which complete
// on their own goroutines) and the rendering loop. ViewState is the per-screen
// projection on top of that data: the user-entered category/author/search
// selectors, the price sort, and the page window.
//
// # Derived View
//
// The visible subset is a pure function of the ViewState, computed in a fixed
// order:
//
//  1. filter by category (unless the "all" sentinel is selected)
//  2. filter by author (same sentinel)
//  3. filter by case-insensitive name substring
//  4. stable sort by discounted price, when a sort is selected
//  5. slice into the current page window
//
// Because the filters commute, only this computation order is fixed, not the
// order the user happened to enter them in.
//
// # Update Semantics
//
// Store.Update keeps the previous books and records the error when a fetch
// fails, so the UI always has the most recent successful data plus the most
// recent failure to display. Snapshot returns defensive copies.
//
// ViewState.SetBooks preserves the active filters across refetches and clamps
// the page to the new valid range; SetSearch resets to the first page. There
// is no caching beyond the owning screen: every screen entry and every
// completed mutation re-fetches the full list.
package state
