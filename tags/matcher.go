package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// matchPair matches key=value or key element, value can be wrapped with {} or ''
func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	var tokens = []*parsly.Token{scopeBlockMatcher}

	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	if eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex) {
		tokens = append(tokens, eqTerminatorMatcher)
	} else {
		tokens = append(tokens, comaTerminatorMatcher)
	}

	match := cursor.MatchAny(tokens...)
	switch match.Code {
	case scopeBlockToken:
		value = unwrap(match.Text(cursor))
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1]
	case eqTerminatorToken:
		key = match.Text(cursor)
		key = strings.TrimSpace(key[:len(key)-1])
		match = cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case scopeBlockToken, quotedToken:
			value = unwrap(match.Text(cursor))
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1]
		default:
			value = rest(cursor)
		}
		return key, value
	default:
		value = rest(cursor)
	}
	value = strings.TrimSpace(value)
	if index := strings.Index(value, "="); index != -1 {
		return value[:index], value[index+1:]
	}
	return value, ""
}

func rest(cursor *parsly.Cursor) string {
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	ret := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return ret
}

func unwrap(text string) string {
	if len(text) < 2 {
		return text
	}
	switch {
	case text[0] == '{' && text[len(text)-1] == '}', text[0] == '\'' && text[len(text)-1] == '\'':
		return text[1 : len(text)-1]
	}
	return text
}
