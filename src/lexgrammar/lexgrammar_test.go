package lexgrammar

import (
	"testing"

	"github.com/JarvisCraft/javac-rs/src/ast"
	"github.com/stretchr/testify/require"
)

func TestLiteralParseGrid(t *testing.T) {
	expr, _, err := ParseLiteral("0xCAFEBABE")
	require.NoError(t, err)
	require.Equal(t, int32(-889275714), expr.Literal().Int())

	expr, _, err = ParseLiteral("0b1111111111111111111111111111111111111111111111111111111111111111L")
	require.NoError(t, err)
	require.Equal(t, int64(-1), expr.Literal().Long())

	expr, _, err = ParseLiteral("0xA.Bp1f")
	require.NoError(t, err)
	require.InDelta(t, float32(21.375), expr.Literal().Float(), 0.0001)

	expr, _, err = ParseLiteral(`'\u1234'`)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), expr.Literal().Char())

	expr, _, err = ParseLiteral("null")
	require.NoError(t, err)
	require.Equal(t, ast.LiteralNull, expr.Literal().Kind())
}

func TestKeywordBoundaryScenarios(t *testing.T) {
	expr, n, err := ParseKeyword("while")
	require.NoError(t, err)
	require.Equal(t, ast.While, expr.Keyword())
	require.Equal(t, 5, n)

	expr, n, err = ParseKeyword("while ago")
	require.NoError(t, err)
	require.Equal(t, ast.While, expr.Keyword())
	require.Equal(t, 5, n)

	_, _, err = ParseKeyword("whilex")
	require.Error(t, err)

	idExpr, n, err := ParseIdentifier("whilex")
	require.NoError(t, err)
	require.Equal(t, "whilex", idExpr.Identifier())
	require.Equal(t, 6, n)
}

func TestIntBoundaryValues(t *testing.T) {
	expr, _, err := ParseIntLiteral("2147483648")
	require.NoError(t, err)
	require.Equal(t, int32(-2147483648), expr.Literal().Int())

	_, _, err = ParseIntLiteral("2147483649")
	require.ErrorIs(t, err, ErrOverflow)
}

func TestLongBoundaryValues(t *testing.T) {
	expr, _, err := ParseLongLiteral("9223372036854775808L")
	require.NoError(t, err)
	require.Equal(t, int64(-9223372036854775808), expr.Literal().Long())

	_, _, err = ParseLongLiteral("9223372036854775809L")
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCharOctalEscapeBoundary(t *testing.T) {
	_, _, err := ParseCharLiteral(`'\777'`)
	require.ErrorIs(t, err, ErrDigitOutOfRange)

	expr, _, err := ParseCharLiteral(`'\123'`)
	require.NoError(t, err)
	require.Equal(t, uint16(0123), expr.Literal().Char())
}

func TestIdentifierEqualToKeywordFails(t *testing.T) {
	_, _, err := ParseIdentifier("while")
	require.Error(t, err)
}

func TestLineAndBlockComments(t *testing.T) {
	expr, n, err := ParseComment("// trailing comment\nnext")
	require.NoError(t, err)
	require.Equal(t, ast.CommentLine, expr.Comment().Kind())
	require.Equal(t, " trailing comment", expr.Comment().Body())
	require.Equal(t, 19, n)

	expr, n, err = ParseComment("/* block */ rest")
	require.NoError(t, err)
	require.Equal(t, ast.CommentBlock, expr.Comment().Kind())
	require.Equal(t, " block ", expr.Comment().Body())
	require.Equal(t, 11, n)
}
