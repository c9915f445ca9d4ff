// Package content holds the declarative nesting rules for markup tags:
// which structural category each tag establishes, which parents it may
// legally appear under, and the tri-state predicate that decides whether a
// (parent, child) pairing is allowed. The table is built once and is safe
// for concurrent read-only use.
package content

// Category is the structural role a tag establishes for its children.
// The set is closed: the checker matches on it exhaustively.
type Category uint8

const (
	CategoryInvalid Category = iota
	// CategoryDocument is the document root context (html only).
	CategoryDocument
	// CategoryFlow is the generic block context (body, div, td, ...).
	CategoryFlow
	// CategoryPhrasing is the inline context (span, p, h1, button, ...).
	CategoryPhrasing
	// CategoryHead is the metadata context established by head.
	CategoryHead
	// CategoryTable is the context established by table itself.
	CategoryTable
	// CategoryTableSection covers thead, tbody and tfoot.
	CategoryTableSection
	// CategoryRow is the context established by tr.
	CategoryRow
	// CategoryList covers ul, ol and menu.
	CategoryList
	// CategoryDescList is the dl context hosting dt/dd pairs.
	CategoryDescList
	// CategorySelect is the select/datalist context.
	CategorySelect
	// CategoryOptGroup is the optgroup context.
	CategoryOptGroup
	// CategoryMedia covers audio, video and picture.
	CategoryMedia
	// CategoryRuby is the ruby annotation context.
	CategoryRuby
	// CategoryText marks tags whose content is raw text; element
	// children are never valid under them.
	CategoryText
	// CategoryVoid marks tags that admit no children at all.
	CategoryVoid

	categoryCount
)

var categoryNames = [...]string{
	CategoryInvalid:      "invalid",
	CategoryDocument:     "document",
	CategoryFlow:         "flow",
	CategoryPhrasing:     "phrasing",
	CategoryHead:         "head",
	CategoryTable:        "table",
	CategoryTableSection: "table-section",
	CategoryRow:          "row",
	CategoryList:         "list",
	CategoryDescList:     "desc-list",
	CategorySelect:       "select",
	CategoryOptGroup:     "opt-group",
	CategoryMedia:        "media",
	CategoryRuby:         "ruby",
	CategoryText:         "text",
	CategoryVoid:         "void",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "invalid"
}
