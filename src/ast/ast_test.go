package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLiteralKindsCarryTheirOwnValueOnly(t *testing.T) {
	require.Equal(t, LiteralNull, NewNullLiteral().Kind())
	require.Equal(t, int32(-889275714), NewIntLiteral(-889275714).Int())
	require.Equal(t, int64(-1), NewLongLiteral(-1).Long())
	require.Equal(t, float32(21.375), NewFloatLiteral(21.375).Float())
	require.Equal(t, uint16(0x1234), NewCharLiteral(0x1234).Char())
}

func TestKeywordsTotalExactlyFifty(t *testing.T) {
	require.Len(t, Keywords(), 50)
}

func TestKeywordSpellingRoundTrips(t *testing.T) {
	require.Equal(t, "while", While.String())
	require.Equal(t, "instanceof", Instanceof.String())
}

func TestExpressionWrapsEachVariantIndependently(t *testing.T) {
	lit := NewLiteralExpression(NewNullLiteral())
	require.Equal(t, ExpressionLiteral, lit.Kind())

	kw := NewKeywordExpression(While)
	require.Equal(t, ExpressionKeyword, kw.Kind())
	require.Equal(t, While, kw.Keyword())

	id := NewIdentifierExpression("whilex")
	require.Equal(t, ExpressionIdentifier, id.Kind())
	require.Equal(t, "whilex", id.Identifier())

	cmt := NewCommentExpression(NewComment(CommentBlock, " hi "))
	require.Equal(t, ExpressionComment, cmt.Kind())
	require.Equal(t, CommentBlock, cmt.Comment().Kind())
}

// TestExpressionTreesCompareStructurallyEqual uses go-cmp, rather than
// require.Equal's reflect-based diff, so a future nested-expression
// variant gets a readable structural diff instead of a flat dump.
func TestExpressionTreesCompareStructurallyEqual(t *testing.T) {
	a := NewLiteralExpression(NewIntLiteral(42))
	b := NewLiteralExpression(NewIntLiteral(42))
	opts := cmp.AllowUnexported(Expression{}, Literal{}, Comment{})
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Fatalf("identical expressions compared unequal (-want +got):\n%s", diff)
	}

	c := NewLiteralExpression(NewIntLiteral(43))
	if diff := cmp.Diff(a, c, opts); diff == "" {
		t.Fatal("distinct expressions compared equal")
	}
}
