package menu

import "strings"

// Binding documents one key or key group in the playground.
type Binding struct {
	Keys string
	Help string
}

var commonBindings = []Binding{
	{Keys: "tab / shift+tab", Help: "move focus"},
	{Keys: "esc", Help: "dismiss top layer, then go back"},
	{Keys: "?", Help: "toggle key help"},
	{Keys: "ctrl+c", Help: "quit"},
}

var demoBindings = map[string][]Binding{
	"root": {
		{Keys: "↑/↓ home/end", Help: "move through demos"},
		{Keys: "a-z", Help: "jump by type-ahead"},
		{Keys: "enter / click", Help: "open demo"},
	},
	"menu": {
		{Keys: "enter / space / ↓ / ↑", Help: "open menu on trigger"},
		{Keys: "↑/↓ home/end", Help: "move highlight"},
		{Keys: "a-z", Help: "jump by type-ahead"},
		{Keys: "enter", Help: "select item"},
	},
	"select": {
		{Keys: "enter / space / ↓", Help: "open listbox"},
		{Keys: "enter", Help: "choose option"},
		{Keys: "/", Help: "filter options"},
	},
	"multi-select": {
		{Keys: "enter", Help: "toggle option"},
		{Keys: "/", Help: "filter options"},
		{Keys: "ctrl+x", Help: "clear selection"},
	},
	"context-menu": {
		{Keys: "right click", Help: "open at pointer"},
		{Keys: "f10", Help: "open at target"},
	},
	"dialog": {
		{Keys: "enter", Help: "open dialog"},
		{Keys: "tab", Help: "cycle inside the dialog"},
	},
	"alert-dialog": {
		{Keys: "enter", Help: "open alert dialog"},
		{Keys: "click outside", Help: "ignored"},
	},
	"sheet": {
		{Keys: "enter", Help: "open sheet"},
		{Keys: "s", Help: "cycle sheet side"},
	},
	"tooltip": {
		{Keys: "hover / focus", Help: "show tooltip after the open delay"},
		{Keys: "esc", Help: "hide tooltip"},
	},
	"number-input": {
		{Keys: "↑/↓", Help: "step"},
		{Keys: "pgup/pgdn", Help: "large step"},
		{Keys: "home/end", Help: "min / max"},
		{Keys: "0-9 . -", Help: "edit, enter commits"},
		{Keys: "press and hold −/+", Help: "spin"},
	},
	"file-upload": {
		{Keys: "enter / space", Help: "pick files by path"},
		{Keys: "x", Help: "remove last file"},
	},
}

// KeyBindings returns the bindings for a demo followed by the common ones.
func KeyBindings(demo string) []Binding {
	out := append([]Binding(nil), demoBindings[demo]...)
	return append(out, commonBindings...)
}

// FooterHint renders the demo specific bindings as a single line.
func FooterHint(demo string) string {
	bindings := demoBindings[demo]
	if len(bindings) == 0 {
		bindings = commonBindings
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Keys+" "+b.Help)
	}
	return strings.Join(parts, "  ")
}
