// Package roster encodes and decodes the team roster stored as text inside
// the flat settings record. The stored form is a JSON array of member objects;
// the store itself treats it as an opaque string.
package roster

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Member represents a single staff entry. Members carry no identity beyond
// their position in the roster; order is significant and preserved.
type Member struct {
	Name      string `form:"name"      json:"name"      validate:"required"`
	Role      string `form:"role"      json:"role"      validate:"required"`
	Expertise string `form:"expertise" json:"expertise"`
	Image     string `form:"image"     json:"image"`
}

// Decode parses the stored text form into an ordered member list. Corrupted,
// empty or otherwise unparseable input degrades to an empty roster; an error
// never crosses this boundary.
func Decode(text string) []Member {
	if text == "" {
		return []Member{}
	}

	var members []Member
	if err := json.Unmarshal([]byte(text), &members); err != nil {
		log.Warn().Err(err).Msg("malformed team roster, falling back to empty roster")
		return []Member{}
	}

	// JSON "null" unmarshals to a nil slice without an error.
	if members == nil {
		return []Member{}
	}

	return members
}

// Encode serializes the ordered member list back to the stored text form.
// A nil or empty roster encodes to "[]", never to an error or "null".
func Encode(members []Member) (string, error) {
	if members == nil {
		members = []Member{}
	}

	data, err := json.Marshal(members)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
