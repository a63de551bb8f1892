package ast

// ExpressionKind discriminates the top-level AST expression tagged
// union (spec §3: "literal, keyword, identifier, comment").
type ExpressionKind int

const (
	ExpressionLiteral ExpressionKind = iota
	ExpressionKeyword
	ExpressionIdentifier
	ExpressionComment
)

// Expression is the value every grammar entry point returns on success.
type Expression struct {
	kind       ExpressionKind
	literal    Literal
	keyword    Keyword
	identifier string
	comment    Comment
}

// NewLiteralExpression wraps a literal as an expression.
func NewLiteralExpression(l Literal) Expression {
	return Expression{kind: ExpressionLiteral, literal: l}
}

// NewKeywordExpression wraps a keyword as an expression.
func NewKeywordExpression(k Keyword) Expression {
	return Expression{kind: ExpressionKeyword, keyword: k}
}

// NewIdentifierExpression wraps an identifier name as an expression.
func NewIdentifierExpression(name string) Expression {
	return Expression{kind: ExpressionIdentifier, identifier: name}
}

// NewCommentExpression wraps a comment as an expression.
func NewCommentExpression(c Comment) Expression {
	return Expression{kind: ExpressionComment, comment: c}
}

// Kind reports which of literal/keyword/identifier/comment this is.
func (e Expression) Kind() ExpressionKind { return e.kind }

// Literal returns the wrapped literal; meaningful only when Kind ==
// ExpressionLiteral.
func (e Expression) Literal() Literal { return e.literal }

// Keyword returns the wrapped keyword; meaningful only when Kind ==
// ExpressionKeyword.
func (e Expression) Keyword() Keyword { return e.keyword }

// Identifier returns the wrapped name; meaningful only when Kind ==
// ExpressionIdentifier.
func (e Expression) Identifier() string { return e.identifier }

// Comment returns the wrapped comment; meaningful only when Kind ==
// ExpressionComment.
func (e Expression) Comment() Comment { return e.comment }
