// Package behavior composes the focus, roving, dismiss, anchor and
// type-ahead primitives into widget controllers: menus, selects, dialogs and
// sheets, context menus, tooltips, number inputs and file uploads.
//
// A controller never renders. The host hands it element references through
// SetTrigger and SetContent, calls its methods in response to user input and
// applies the Props bundles it returns. Opening defers primitive setup by
// one document microtask so layout is committed first; closing releases the
// primitives in reverse acquisition order.
package behavior
