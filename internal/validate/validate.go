// Package validate holds the request input checks applied before any store access.
package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID reports whether every id is a canonical, hyphenated RFC 4122 version 4
// UUID. A call without ids fails.
func UUID(ids ...string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !isUUIDv4(id) {
			return false
		}
	}
	return true
}

func isUUIDv4(s string) bool {
	// uuid.Parse also accepts urn: and braced forms.
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

var stripper = strings.NewReplacer(
	"|", "", "&", "", ";", "", "$", "", "%", "", "@", "",
	`"`, "", "<", "", ">", "", "(", "", ")", "", "+", "", ",", "",
)

// Clean converts v to a string and removes the denylisted characters
// | & ; $ % @ " < > ( ) + and the comma.
func Clean(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	return stripper.Replace(s)
}

// Text cleans and trims a free-text field.
func Text(s string) string { return strings.TrimSpace(Clean(s)) }
