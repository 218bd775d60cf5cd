// Package ui contains the Bubble Tea program that hosts the primitives
// playground. Every demo is a subtree of one dom.Document; the terminal is a
// view onto that document and a source of events for it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so one focused function handles
//     it (key presses, mouse events, resizes, timer ticks, action results).
//   - Key and mouse handlers translate terminal input into DOM events
//     (keydown, pointerdown, click, contextmenu, pointerenter/leave) and
//     dispatch them at the focused element or the element under the pointer.
//     Controllers from internal/behavior react to those events exactly as they
//     would to any other source.
//   - After every message finishUpdate flushes microtasks, re-applies
//     controller props, re-runs the layout and arms a tea.Tick for the next
//     pending document timer, which arrives back as TimerMsg.
//
// Scene ownership:
//   - The catalogue is the root scene; opening a demo pushes another scene on
//     the stack and Escape pops it once no dismissable layer claimed the key.
//   - Each scene owns a behavior.Scope. Controllers acquired into it are
//     destroyed in reverse order when the scene is popped or the model closes.
//   - Demo actions (selection, confirmation, commits, file picks) are looked
//     up in the internal/menu registry and run through the command bus, so
//     their results arrive as ordinary messages.
//
// Rendering paints rendered elements onto a cell canvas in document order,
// so floating content placed later in the tree covers what precedes it.
package ui
