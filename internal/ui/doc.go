// Package ui contains the Bubble Tea program that renders the catalog grid.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, lazy population, image fallbacks, and rendering.
//
// Message flow:
//   - Init requests the catalog root and starts waiting for image failures.
//   - Update routes every tea.Msg through a typed handler registry so each
//     message is handled by a focused function.
//   - Key presses are mapped to intents (keys.go). Directional intents pass the
//     move limiter, then the pure navigation engine in internal/ui/state; an
//     accepted move scrolls the row and tile viewports.
//   - Activation binds overlay content while the modal is still closed, then
//     opens it. Dismissal closes first and clears afterwards.
//
// State ownership:
//   - The grid, the selection, and the modal are owned by Model and only
//     mutated inside Update.
//   - Fetch jobs raised by the population controller are queued on the
//     internal/ui/command bus and returned as commands at the end of the update
//     that raised them; their completions come back as messages.
//   - Image failures from the backend watcher are applied by the dispatcher,
//     which swaps in the placeholder asset.
//
// After every change that can move rows on or off screen, syncViewports
// reports the visible rows to the population controller's viewport source.
package ui
