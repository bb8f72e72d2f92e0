package notes

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading returns the text of the first level-2 heading in markdown, or "".
func Heading(markdown []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(markdown))

	var heading string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if n.(*ast.Heading).Level == 2 {
				heading = string(n.Text(markdown))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return heading
}
