package ast

// Keyword enumerates the 50 reserved words of the Java language (JLS
// 3.9; `true`, `false`, and `null` are literals, not keywords, and are
// not members of this set).
type Keyword int

const (
	Abstract Keyword = iota
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Void
	Volatile
	While
)

// keywordSpellings maps each Keyword to its source-text spelling. Order
// is insertion order for readability only; the grammar does its own
// longest-match-first ordering over these pairs (lexgrammar.keywordTable).
var keywordSpellings = map[Keyword]string{
	Abstract:     "abstract",
	Assert:       "assert",
	Boolean:      "boolean",
	Break:        "break",
	Byte:         "byte",
	Case:         "case",
	Catch:        "catch",
	Char:         "char",
	Class:        "class",
	Const:        "const",
	Continue:     "continue",
	Default:      "default",
	Do:           "do",
	Double:       "double",
	Else:         "else",
	Enum:         "enum",
	Extends:      "extends",
	Final:        "final",
	Finally:      "finally",
	Float:        "float",
	For:          "for",
	Goto:         "goto",
	If:           "if",
	Implements:   "implements",
	Import:       "import",
	Instanceof:   "instanceof",
	Int:          "int",
	Interface:    "interface",
	Long:         "long",
	Native:       "native",
	New:          "new",
	Package:      "package",
	Private:      "private",
	Protected:    "protected",
	Public:       "public",
	Return:       "return",
	Short:        "short",
	Static:       "static",
	Strictfp:     "strictfp",
	Super:        "super",
	Switch:       "switch",
	Synchronized: "synchronized",
	This:         "this",
	Throw:        "throw",
	Throws:       "throws",
	Transient:    "transient",
	Try:          "try",
	Void:         "void",
	Volatile:     "volatile",
	While:        "while",
}

// String returns the keyword's source-text spelling.
func (k Keyword) String() string { return keywordSpellings[k] }

// Keywords returns every reserved word paired with its spelling, for
// callers (lexgrammar's keyword table) that need to enumerate the whole
// set rather than look up one at a time.
func Keywords() map[Keyword]string {
	out := make(map[Keyword]string, len(keywordSpellings))
	for k, v := range keywordSpellings {
		out[k] = v
	}
	return out
}
