package swc

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// record is one SWC sample line:
//
//	index type x y z radius parent
type record struct {
	Index  int     `parser:"@Number"`
	Type   int     `parser:"@Number"`
	X      float64 `parser:"@Number"`
	Y      float64 `parser:"@Number"`
	Z      float64 `parser:"@Number"`
	Radius float64 `parser:"@Number"`
	Parent int     `parser:"@Number"`
}

var sRecordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var sParseRecord = participle.MustBuild[record](
	participle.Lexer(sRecordLexer),
)
