package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// TokenList is the ordered list of a user's session tokens, stored as a JSON
// array in a text column.
type TokenList []string

// Value implements driver.Valuer
func (l TokenList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *TokenList) Scan(value interface{}) error {
	if value == nil {
		*l = TokenList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported token list type %T", value)
	}
	if len(bytes) == 0 {
		*l = TokenList{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}

// Contains reports whether token is an active session.
func (l TokenList) Contains(token string) bool {
	return slices.Contains(l, token)
}

// Remove returns the list without the first occurrence of token.
func (l TokenList) Remove(token string) TokenList {
	i := slices.Index(l, token)
	if i < 0 {
		return l
	}
	return slices.Delete(slices.Clone(l), i, i+1)
}
