package game

import "fmt"

type tokenSet struct {
	X Token
	O Token
}

// Tokens represents the set of tokens that can be dropped on a board.
var Tokens = tokenSet{
	X: newToken("X"),
	O: newToken("O"),
}

// =============================================================================

// Set of known tokens.
var tokens = make(map[string]Token)

// Token marks which side occupies a cell. The zero value is an empty cell.
type Token struct {
	name string
}

func newToken(token string) Token {
	t := Token{token}
	tokens[token] = t
	return t
}

// IsZero checks if the token is set to its zero value.
func (t Token) IsZero() bool {
	return t.name == ""
}

// String returns the name of the token.
func (t Token) String() string {
	return t.name
}

// Equal provides support for the go-cmp package and testing.
func (t Token) Equal(t2 Token) bool {
	return t.name == t2.name
}

// Opponent returns the other token. The zero token has no opponent.
func (t Token) Opponent() Token {
	switch t {
	case Tokens.X:
		return Tokens.O
	case Tokens.O:
		return Tokens.X
	}

	return Token{}
}

// =============================================================================

// ParseToken parses the string value and returns a token if one exists.
func ParseToken(value string) (Token, error) {
	token, exists := tokens[value]
	if !exists {
		return Token{}, fmt.Errorf("invalid token %q", value)
	}

	return token, nil
}
