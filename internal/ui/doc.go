// Package ui is the blueprint terminal front end, built on Bubble Tea.
//
// Core abstractions:
//   - View: a page or modal with its own update and view (Elm-style)
//   - AppModel: routes between pages and owns the overlay stack and leader keys
//   - DeskView: a page of floating panels backed by a desk.Desk
//   - ListPage: a bubbles list of catalogue entries that open a DetailModal
//   - Overlay: modal views with a dismiss key; open overlays pause page scroll
//
// Panels are positioned in layout units and snapped to terminal cells when
// drawn; canvas splices them onto the page in stacking order.
package ui
