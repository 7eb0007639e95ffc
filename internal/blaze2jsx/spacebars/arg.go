package spacebars

type ArgKind string

const (
	StringArg  ArgKind = "STRING"
	NumberArg  ArgKind = "NUMBER"
	BooleanArg ArgKind = "BOOLEAN"
	NullArg    ArgKind = "NULL"
	PathArg    ArgKind = "PATH"
	ExprArg    ArgKind = "EXPR"
)

// Arg is one argument of a directive. Value holds a string, float64, bool,
// nil, Path or *Expr according to Kind. A non-empty Name makes it a keyword
// argument (`name=value`).
type Arg struct {
	Kind  ArgKind
	Value any
	Name  string
}

// Expr is a parenthesized sub-expression: `(helper a b=c)`.
type Expr struct {
	Path Path
	Args []Arg
}

func (a Arg) IsKeyword() bool { return a.Name != "" }

// Named returns a copy of a as keyword argument name.
func (a Arg) Named(name string) Arg {
	a.Name = name
	return a
}

func String(s string) Arg { return Arg{Kind: StringArg, Value: s} }

func Number(n float64) Arg { return Arg{Kind: NumberArg, Value: n} }

func Bool(b bool) Arg { return Arg{Kind: BooleanArg, Value: b} }

func Null() Arg { return Arg{Kind: NullArg} }

func Ref(path string) Arg { return Arg{Kind: PathArg, Value: ParsePath(path)} }

func Sub(path string, args ...Arg) Arg {
	return Arg{Kind: ExprArg, Value: &Expr{Path: ParsePath(path), Args: args}}
}
