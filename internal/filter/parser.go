package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST types for Participle grammar

// filterExpr is the root of the grammar: comma-separated constraints
type filterExpr struct {
	Constraints []*constraintExpr `parser:"@@ ( ',' @@ )*"`
}

// constraintExpr represents a single constraint: flag, or field op value
type constraintExpr struct {
	Flag  string `parser:"@Flag"`
	Field string `parser:"| ( @Field"`
	Op    string `parser:"@Operator"`
	Value string `parser:"@Value )"`
}

// Build the lexer
// Field and Flag patterns use word boundaries so "group" never matches inside a value.
var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Operator", Pattern: `>=|<=|>|<|=`},
	{Name: "Field", Pattern: `(?i)\bgroup\b|\bversion\b`},
	{Name: "Flag", Pattern: `(?i)\bactive\b|\binstalled\b|\bdownloaded\b`},
	{Name: "Value", Pattern: `\d+(\.\d+)*`},
})

// Build the parser
var filterParser = participle.MustBuild[filterExpr](
	participle.Lexer(filterLexer),
	participle.CaseInsensitive("Field", "Flag"),
	participle.Elide("Whitespace"),
)

// Parse parses a filter expression like "group=4.4" or "version>=4.15,installed".
func Parse(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	ast, err := filterParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}

	constraints := make([]Constraint, 0, len(ast.Constraints))
	for _, c := range ast.Constraints {
		constraint, err := convertConstraint(c)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, constraint)
	}

	return &Filter{Constraints: constraints}, nil
}

// convertConstraint converts an AST constraint to a domain Constraint
func convertConstraint(c *constraintExpr) (Constraint, error) {
	if c.Flag != "" {
		return Constraint{Flag: Flag(strings.ToLower(c.Flag))}, nil
	}

	field := Field(strings.ToLower(c.Field))
	op := Op(c.Op)

	// Groups are labels, not ordered versions; only equality makes sense.
	if field == FieldGroup && op != OpEqual {
		return Constraint{}, fmt.Errorf("group supports '=' only, got %q", c.Op)
	}

	return Constraint{Field: field, Op: op, Value: c.Value}, nil
}
