// Package glyph holds the symbols drawn next to tasks.
package glyph

// Glyph is a symbol with the key that triggers it in the UI.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

var (
	// Open marks a task that is still to do.
	Open = Glyph{Key: "space", Symbol: "⬜", Meaning: "task"}
	// Done marks a completed task.
	Done = Glyph{Key: "space", Symbol: "✅", Meaning: "task completed"}
	// Remove is the delete control on a row.
	Remove = Glyph{Key: "d", Symbol: "❌", Meaning: "delete task"}
	// Party wraps the completion banner once everything is done.
	Party = Glyph{Symbol: "🎊", Meaning: "all tasks completed"}
	// Fire prefixes the completion banner while work remains.
	Fire = Glyph{Symbol: "🔥", Meaning: "tasks remaining"}
)

// DefaultGlyphs lists the glyphs in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{Open, Done, Remove, Fire, Party}
}

func (g Glyph) String() string {
	return g.Symbol
}
