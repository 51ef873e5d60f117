package ast

// Block is a `{ ... }` sequence of statements.
type Block struct {
	base
	Statements []Statement
}

func (b *Block) stmtNode() {}
func (b *Block) Children() []Attr {
	return []Attr{many("statements", b.Statements)}
}

// IfStatement is `if (cond) then else elseBranch`; Else is nil when absent.
type IfStatement struct {
	base
	Condition Expr
	Then      Statement
	Else      Statement
}

func (s *IfStatement) stmtNode() {}
func (s *IfStatement) Children() []Attr {
	return []Attr{one("condition", s.Condition), one("then", s.Then), one("else", s.Else)}
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	base
	Condition Expr
	Body      Statement
}

func (s *WhileStatement) stmtNode() {}
func (s *WhileStatement) Children() []Attr {
	return []Attr{one("condition", s.Condition), one("body", s.Body)}
}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	base
	Body      Statement
	Condition Expr
}

func (s *DoWhileStatement) stmtNode() {}
func (s *DoWhileStatement) Children() []Attr {
	return []Attr{one("body", s.Body), one("condition", s.Condition)}
}

// ForStatement is the classic three-part `for (init; cond; update) body`.
// Init statements are typically a LocalVariableDeclaration or a list of
// ExpressionStatements; Update is a list of expressions.
type ForStatement struct {
	base
	Init      []Statement
	Condition Expr
	Update    []Expr
	Body      Statement
}

func (s *ForStatement) stmtNode() {}
func (s *ForStatement) Children() []Attr {
	return []Attr{
		many("init", s.Init),
		one("condition", s.Condition),
		many("update", s.Update),
		one("body", s.Body),
	}
}

// ForEachStatement is `for (Type name : iterable) body`.
type ForEachStatement struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Type        Type
	Name        string
	Iterable    Expr
	Body        Statement
}

func (s *ForEachStatement) stmtNode() {}
func (s *ForEachStatement) Children() []Attr {
	return []Attr{
		many("annotations", s.Annotations),
		one("type", s.Type),
		one("iterable", s.Iterable),
		one("body", s.Body),
	}
}

// SwitchStatement is `switch (selector) { cases }`.
type SwitchStatement struct {
	base
	Selector Expr
	Cases    []*SwitchCase
}

func (s *SwitchStatement) stmtNode() {}
func (s *SwitchStatement) Children() []Attr {
	return []Attr{one("selector", s.Selector), many("cases", s.Cases)}
}

// SwitchCase is one `case label:`/`default:` block of statements. An empty
// Labels slice marks the default case.
type SwitchCase struct {
	base
	Labels     []Expr
	Statements []Statement
}

func (c *SwitchCase) Children() []Attr {
	return []Attr{many("labels", c.Labels), many("statements", c.Statements)}
}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	base
	Label string
}

func (s *BreakStatement) stmtNode()      {}
func (s *BreakStatement) Children() []Attr { return nil }

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	base
	Label string
}

func (s *ContinueStatement) stmtNode()      {}
func (s *ContinueStatement) Children() []Attr { return nil }

// ReturnStatement is `return;` or `return value;`.
type ReturnStatement struct {
	base
	Value Expr
}

func (s *ReturnStatement) stmtNode() {}
func (s *ReturnStatement) Children() []Attr {
	return []Attr{one("value", s.Value)}
}

// ThrowStatement is `throw value;`.
type ThrowStatement struct {
	base
	Value Expr
}

func (s *ThrowStatement) stmtNode() {}
func (s *ThrowStatement) Children() []Attr {
	return []Attr{one("value", s.Value)}
}

// Resource is one `Type name = initializer` entry in a try-with-resources
// resource list, or a bare Expr referring to an already-declared
// effectively-final variable (Java 9 relaxed this; kept here since
// javalang's parser already accepts it and nothing in spec.md forbids it).
type Resource struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Type        Type // nil when Expr is set
	Name        string
	Initializer Expr // nil when Expr is set
	Expr        Expr // set for the bare-variable resource form
}

func (r *Resource) Children() []Attr {
	return []Attr{
		many("annotations", r.Annotations),
		one("type", r.Type),
		one("initializer", r.Initializer),
		one("expr", r.Expr),
	}
}

// CatchClause is one `catch (A | B e) body` clause; multiple Types entries
// come from Java 7's multi-catch.
type CatchClause struct {
	base
	Modifiers Modifiers
	Types     []*ReferenceType
	Name      string
	Body      *Block
}

func (c *CatchClause) Children() []Attr {
	return []Attr{many("types", c.Types), one("body", c.Body)}
}

// TryStatement covers plain try/catch/finally and try-with-resources.
type TryStatement struct {
	base
	Resources []*Resource
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

func (s *TryStatement) stmtNode() {}
func (s *TryStatement) Children() []Attr {
	return []Attr{
		many("resources", s.Resources),
		one("body", s.Body),
		many("catches", s.Catches),
		one("finally", s.Finally),
	}
}

// SynchronizedStatement is `synchronized (lock) body`.
type SynchronizedStatement struct {
	base
	Lock Expr
	Body *Block
}

func (s *SynchronizedStatement) stmtNode() {}
func (s *SynchronizedStatement) Children() []Attr {
	return []Attr{one("lock", s.Lock), one("body", s.Body)}
}

// ExpressionStatement wraps a standalone expression used as a statement
// (method call, assignment, increment/decrement, instance creation).
type ExpressionStatement struct {
	base
	Expression Expr
}

func (s *ExpressionStatement) stmtNode() {}
func (s *ExpressionStatement) Children() []Attr {
	return []Attr{one("expression", s.Expression)}
}

// AssertStatement is `assert cond;` or `assert cond : message;`.
type AssertStatement struct {
	base
	Condition Expr
	Message   Expr
}

func (s *AssertStatement) stmtNode() {}
func (s *AssertStatement) Children() []Attr {
	return []Attr{one("condition", s.Condition), one("message", s.Message)}
}

// LabeledStatement is `label: statement`.
type LabeledStatement struct {
	base
	Label     string
	Statement Statement
}

func (s *LabeledStatement) stmtNode() {}
func (s *LabeledStatement) Children() []Attr {
	return []Attr{one("statement", s.Statement)}
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	base
}

func (s *EmptyStatement) stmtNode()      {}
func (s *EmptyStatement) Children() []Attr { return nil }
