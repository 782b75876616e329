package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	members := []Member{
		{
			Name:      "Adio Lateefat Oluwakemi",
			Role:      "CEO & Founder",
			Expertise: "Geriatric & Maternity Specialist",
			Image:     "/images/team_0.jpg",
		},
		{
			Name:      "Dr. Samuel Okoro",
			Role:      "Lead Geriatrician",
			Expertise: "Elderly Chronic Disease Management",
			Image:     "/images/team_1.jpg",
		},
		{
			Name: "Unnamed placeholder",
			Role: "Support",
		},
	}

	text, err := Encode(members)
	require.NoError(t, err)

	decoded := Decode(text)
	assert.Equal(t, members, decoded, "round trip must preserve fields and order")
}

func TestEncodeEmptyRoster(t *testing.T) {
	text, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", text)

	text, err = Encode([]Member{})
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestDecodeMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"not json", "not json"},
		{"json null", "null"},
		{"wrong json shape", `{"name":"x"}`},
		{"wrong element type", "[1,2,3]"},
		{"truncated array", `[{"name":"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := Decode(tt.text)
			assert.NotNil(t, decoded)
			assert.Empty(t, decoded)
		})
	}
}

func TestDecodeStoredWireForm(t *testing.T) {
	// The exact text form persisted by the settings store.
	text := `[{"name":"Nurse Blessing Adeyemi","role":"Maternity Lead",` +
		`"expertise":"Obstetric & Fertility Support","image":"/images/team_2.jpg"}]`

	decoded := Decode(text)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Nurse Blessing Adeyemi", decoded[0].Name)
	assert.Equal(t, "Maternity Lead", decoded[0].Role)
	assert.Equal(t, "Obstetric & Fertility Support", decoded[0].Expertise)
	assert.Equal(t, "/images/team_2.jpg", decoded[0].Image)
}
