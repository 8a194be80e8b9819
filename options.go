package hub

// Choice is one entry of a fixed editor select list.
type Choice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EditorCategories are the categories offered by the admin editor.
var EditorCategories = []Choice{
	{Name: "Finance", Value: "Finance"},
	{Name: "Health", Value: "Health"},
	{Name: "Education", Value: "Education"},
	{Name: "Psychology", Value: "Psychology"},
	{Name: "Technology", Value: "Technology"},
	{Name: "Business", Value: "Business"},
	{Name: "Lifestyle", Value: "Lifestyle"},
	{Name: "Travel", Value: "Travel"},
}

// ContentKinds lists the block kinds in the order the editor offers them.
var ContentKinds = []Choice{
	{Name: "Heading", Value: string(KindHeading)},
	{Name: "Paragraph", Value: string(KindParagraph)},
	{Name: "List", Value: string(KindList)},
	{Name: "Quote", Value: string(KindQuote)},
	{Name: "Image", Value: string(KindImage)},
	{Name: "Code", Value: string(KindCode)},
}

// NewContentBlock returns the starter block the editor inserts for kind.
// An unknown kind yields an empty paragraph.
func NewContentBlock(kind ContentKind) ContentBlock {
	switch kind {
	case KindHeading:
		return ContentBlock{Kind: KindHeading, Text: "New Heading"}
	case KindParagraph:
		return ContentBlock{Kind: KindParagraph, Text: "Start writing your paragraph here..."}
	case KindList:
		return ContentBlock{Kind: KindList, Items: []string{"First item", "Second item", "Third item"}}
	case KindQuote:
		return ContentBlock{Kind: KindQuote, Text: "Your inspiring quote goes here..."}
	case KindImage:
		return ContentBlock{Kind: KindImage, Caption: "Image caption"}
	case KindCode:
		return ContentBlock{Kind: KindCode, Text: "// Your code here\nconsole.log(\"Hello World\");"}
	}
	return ContentBlock{Kind: KindParagraph}
}

// EditorOptions is everything the editor needs to build its selects and
// insert new blocks.
type EditorOptions struct {
	Categories   []Choice                     `json:"categories"`
	ContentTypes []Choice                     `json:"contentTypes"`
	Templates    map[ContentKind]ContentBlock `json:"templates"`
}

// DefaultEditorOptions returns the editor lists and a starter block per kind.
func DefaultEditorOptions() EditorOptions {
	templates := make(map[ContentKind]ContentBlock, len(ContentKinds))
	for _, k := range ContentKinds {
		kind := ContentKind(k.Value)
		templates[kind] = NewContentBlock(kind)
	}
	return EditorOptions{
		Categories:   EditorCategories,
		ContentTypes: ContentKinds,
		Templates:    templates,
	}
}
