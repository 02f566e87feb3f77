package regexlib

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `(?s)\\.`},
	{Name: "Meta", Pattern: `[|*+()]`},
	{Name: "Char", Pattern: `[^|*+()\\]`},
})

var parser = participle.MustBuild[astExpr](participle.Lexer(patternLexer))

func parse(pattern string) (*astExpr, error) {
	return parser.ParseString("pattern", pattern)
}
