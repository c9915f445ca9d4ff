package content

import "sync"

// Default returns the built-in HTML content model. The table is compiled
// on first use and shared by every caller afterwards.
var Default = sync.OnceValue(func() *Model {
	return NewModel(defaultRules())
})

// defaultRules is the built-in HTML tag vocabulary. The allowed-parents
// encoding is per child ("who may contain me"), which is how the content
// model is naturally phrased: a row is described by which sectioning
// elements host it, not the other way around.
func defaultRules() []Rule {
	inline := Parents(CategoryPhrasing, CategoryFlow)
	block := Parents(CategoryFlow)

	return []Rule{
		// Document structure.
		{Name: "html", Context: CategoryDocument},
		{Name: "head", Context: CategoryHead, AllowedParents: Parents(CategoryDocument)},
		{Name: "body", Context: CategoryFlow, AllowedParents: Parents(CategoryDocument)},

		// Metadata. script/style/title carry raw text, not elements.
		{Name: "title", Context: CategoryText, AllowedParents: Parents(CategoryHead)},
		{Name: "base", Context: CategoryVoid, AllowedParents: Parents(CategoryHead)},
		{Name: "link", Context: CategoryVoid, AllowedParents: Parents(CategoryHead, CategoryFlow)},
		{Name: "meta", Context: CategoryVoid, AllowedParents: Parents(CategoryHead, CategoryFlow)},
		{Name: "style", Context: CategoryText, AllowedParents: Parents(CategoryHead, CategoryFlow)},
		{Name: "script", Context: CategoryText, AllowedParents: Parents(CategoryHead, CategoryFlow, CategoryPhrasing)},
		{Name: "noscript", Context: CategoryFlow, AllowedParents: Parents(CategoryHead, CategoryFlow, CategoryPhrasing), Exclude: []string{"noscript"}},
		{Name: "template", Context: CategoryFlow, AllowedParents: Parents(CategoryHead, CategoryFlow, CategoryPhrasing)},

		// Sectioning and grouping.
		{Name: "div", Context: CategoryFlow, AllowedParents: block},
		{Name: "section", Context: CategoryFlow, AllowedParents: block},
		{Name: "article", Context: CategoryFlow, AllowedParents: block},
		{Name: "aside", Context: CategoryFlow, AllowedParents: block},
		{Name: "nav", Context: CategoryFlow, AllowedParents: block},
		{Name: "header", Context: CategoryFlow, AllowedParents: block, Exclude: []string{"header", "footer"}},
		{Name: "footer", Context: CategoryFlow, AllowedParents: block, Exclude: []string{"header", "footer"}},
		{Name: "main", Context: CategoryFlow, AllowedParents: block, Exclude: []string{"article", "aside", "header", "footer", "nav"}},
		{Name: "address", Context: CategoryFlow, AllowedParents: block, Exclude: []string{"address"}},
		{Name: "blockquote", Context: CategoryFlow, AllowedParents: block},
		{Name: "figure", Context: CategoryFlow, AllowedParents: block},
		{Name: "figcaption", Context: CategoryFlow, AllowedParents: ParentSet{Tags: []string{"figure"}}},
		{Name: "details", Context: CategoryFlow, AllowedParents: block},
		{Name: "summary", Context: CategoryPhrasing, AllowedParents: ParentSet{Tags: []string{"details"}}},
		{Name: "dialog", Context: CategoryFlow, AllowedParents: block},
		{Name: "search", Context: CategoryFlow, AllowedParents: block},
		{Name: "hgroup", Context: CategoryFlow, AllowedParents: block},

		// Headings and paragraph-level text. Their context is phrasing:
		// block children inside them are invalid.
		{Name: "h1", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "h2", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "h3", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "h4", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "h5", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "h6", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "p", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "pre", Context: CategoryPhrasing, AllowedParents: block},
		{Name: "hr", Context: CategoryVoid, AllowedParents: block},

		// Lists.
		{Name: "ul", Context: CategoryList, AllowedParents: block},
		{Name: "ol", Context: CategoryList, AllowedParents: block},
		{Name: "menu", Context: CategoryList, AllowedParents: block},
		{Name: "li", Context: CategoryFlow, AllowedParents: Parents(CategoryList)},
		{Name: "dl", Context: CategoryDescList, AllowedParents: block},
		{Name: "dt", Context: CategoryFlow, AllowedParents: Parents(CategoryDescList)},
		{Name: "dd", Context: CategoryFlow, AllowedParents: Parents(CategoryDescList)},

		// Tables. A row may sit directly in a table or in a section;
		// cells require a row.
		{Name: "table", Context: CategoryTable, AllowedParents: block},
		{Name: "caption", Context: CategoryFlow, AllowedParents: Parents(CategoryTable)},
		{Name: "colgroup", Context: CategoryTableSection, AllowedParents: Parents(CategoryTable)},
		{Name: "col", Context: CategoryVoid, AllowedParents: ParentSet{Tags: []string{"colgroup"}}},
		{Name: "thead", Context: CategoryTableSection, AllowedParents: Parents(CategoryTable)},
		{Name: "tbody", Context: CategoryTableSection, AllowedParents: Parents(CategoryTable)},
		{Name: "tfoot", Context: CategoryTableSection, AllowedParents: Parents(CategoryTable)},
		{Name: "tr", Context: CategoryRow, AllowedParents: Parents(CategoryTable, CategoryTableSection), Exclude: []string{"colgroup"}},
		{Name: "td", Context: CategoryFlow, AllowedParents: Parents(CategoryRow)},
		{Name: "th", Context: CategoryFlow, AllowedParents: Parents(CategoryRow)},

		// Phrasing.
		{Name: "span", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "a", Context: CategoryPhrasing, AllowedParents: inline, Interactive: true, NoInteractiveDescendants: true, Transparent: true, Exclude: []string{"a"}},
		{Name: "em", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "strong", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "b", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "i", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "u", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "s", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "small", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "mark", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "abbr", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "cite", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "q", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "code", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "kbd", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "samp", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "var", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "sub", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "sup", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "time", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "data", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "dfn", Context: CategoryPhrasing, AllowedParents: inline, Exclude: []string{"dfn"}},
		{Name: "bdi", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "bdo", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "br", Context: CategoryVoid, AllowedParents: inline},
		{Name: "wbr", Context: CategoryVoid, AllowedParents: inline},
		{Name: "ins", Context: CategoryPhrasing, AllowedParents: inline, Transparent: true},
		{Name: "del", Context: CategoryPhrasing, AllowedParents: inline, Transparent: true},
		{Name: "slot", Context: CategoryPhrasing, AllowedParents: inline, Transparent: true},

		// Ruby annotations.
		{Name: "ruby", Context: CategoryRuby, AllowedParents: inline},
		{Name: "rt", Context: CategoryPhrasing, AllowedParents: Parents(CategoryRuby)},
		{Name: "rp", Context: CategoryPhrasing, AllowedParents: Parents(CategoryRuby)},

		// Embedded content.
		{Name: "img", Context: CategoryVoid, AllowedParents: inline.WithTags("picture")},
		{Name: "picture", Context: CategoryMedia, AllowedParents: inline},
		{Name: "audio", Context: CategoryMedia, AllowedParents: inline, Transparent: true},
		{Name: "video", Context: CategoryMedia, AllowedParents: inline, Transparent: true},
		{Name: "source", Context: CategoryVoid, AllowedParents: Parents(CategoryMedia)},
		{Name: "track", Context: CategoryVoid, AllowedParents: Parents(CategoryMedia)},
		{Name: "iframe", Context: CategoryText, AllowedParents: inline, Interactive: true},
		{Name: "embed", Context: CategoryVoid, AllowedParents: inline, Interactive: true},
		{Name: "object", Context: CategoryMedia, AllowedParents: inline, Transparent: true},
		{Name: "canvas", Context: CategoryPhrasing, AllowedParents: inline, Transparent: true},
		{Name: "map", Context: CategoryPhrasing, AllowedParents: inline, Transparent: true},
		{Name: "area", Context: CategoryVoid, AllowedParents: inline.WithTags("map")},
		{Name: "svg", Context: CategoryText, AllowedParents: inline},
		{Name: "math", Context: CategoryText, AllowedParents: inline},

		// Forms and interactive controls.
		{Name: "form", Context: CategoryFlow, AllowedParents: block, Exclude: []string{"form"}},
		{Name: "label", Context: CategoryPhrasing, AllowedParents: inline, Exclude: []string{"label"}},
		{Name: "input", Context: CategoryVoid, AllowedParents: inline, Interactive: true},
		{Name: "button", Context: CategoryPhrasing, AllowedParents: inline, Interactive: true, NoInteractiveDescendants: true, Exclude: []string{"button"}},
		{Name: "select", Context: CategorySelect, AllowedParents: inline, Interactive: true},
		{Name: "datalist", Context: CategorySelect, AllowedParents: inline},
		{Name: "optgroup", Context: CategoryOptGroup, AllowedParents: Parents(CategorySelect)},
		{Name: "option", Context: CategoryText, AllowedParents: Parents(CategorySelect, CategoryOptGroup)},
		{Name: "textarea", Context: CategoryText, AllowedParents: inline, Interactive: true},
		{Name: "output", Context: CategoryPhrasing, AllowedParents: inline},
		{Name: "progress", Context: CategoryPhrasing, AllowedParents: inline, Exclude: []string{"progress"}},
		{Name: "meter", Context: CategoryPhrasing, AllowedParents: inline, Exclude: []string{"meter"}},
		{Name: "fieldset", Context: CategoryFlow, AllowedParents: block},
		{Name: "legend", Context: CategoryPhrasing, AllowedParents: ParentSet{Tags: []string{"fieldset"}}},
	}
}
