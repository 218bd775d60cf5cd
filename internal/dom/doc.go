// Package dom is a small document model that the behaviour primitives run
// against. It plays the role a browser DOM plays for web widgets:
//
//   - Element trees with attributes, inline style properties, text and a
//     layout box (Rect). An element without a layout box is "not rendered".
//   - Focus tracking with focusin/focusout events.
//   - Synchronous event dispatch with a capture phase, a target phase and a
//     bubble phase, followed by default actions (Tab moves focus, Enter and
//     Space on a button dispatch click, pointerdown focuses).
//   - A microtask queue used for the single post-commit deferral the
//     controllers need, and a timer queue driven by an injectable Clock.
//
// Everything here is single threaded. A Document and its elements must only
// be touched from one goroutine, normally the Bubble Tea update loop.
package dom
