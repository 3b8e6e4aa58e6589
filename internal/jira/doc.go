package jira

// Doc is an Atlassian Document Format body. The v3 API requires comment
// and worklog text wrapped in this structure.
type Doc struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content []Node `json:"content"`
}

// Node is one block or inline element of a Doc.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// TextDoc wraps plain text in a single-paragraph document.
func TextDoc(text string) Doc {
	return Doc{
		Type:    "doc",
		Version: 1,
		Content: []Node{{
			Type: "paragraph",
			Content: []Node{{
				Type: "text",
				Text: text,
			}},
		}},
	}
}
