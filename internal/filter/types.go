// Package filter provides filter expression parsing and matching.
package filter

// Op for version comparison.
type Op string

const (
	OpEqual        Op = "="
	OpGreater      Op = ">"
	OpLess         Op = "<"
	OpGreaterEqual Op = ">="
	OpLessEqual    Op = "<="
)

// Field names a comparable kernel attribute.
type Field string

const (
	FieldGroup   Field = "group"
	FieldVersion Field = "version"
)

// Flag names a boolean kernel attribute usable as a bare constraint.
type Flag string

const (
	FlagActive     Flag = "active"
	FlagInstalled  Flag = "installed"
	FlagDownloaded Flag = "downloaded"
)

// Constraint represents a single filter constraint: either a bare flag
// ("installed") or a field comparison ("version>=4.15").
type Constraint struct {
	Flag  Flag  // set for bare flag constraints
	Field Field // set for field comparisons
	Op    Op
	Value string
}

// Filter represents a parsed filter expression.
type Filter struct {
	Constraints []Constraint
}
