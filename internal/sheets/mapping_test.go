package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMappingsKeepsOrder(t *testing.T) {
	raw := `[{"field":"date","column":"A"},{"field":"fullName","column":"B"},{"field":"phone","column":"C"}]`

	mappings, err := ParseMappings(raw)
	require.NoError(t, err)

	require.Len(t, mappings, 3)
	assert.Equal(t, "date", mappings[0].Field)
	assert.Equal(t, "fullName", mappings[1].Field)
	assert.Equal(t, "phone", mappings[2].Field)
}

func TestParseMappingsEmpty(t *testing.T) {
	mappings, err := ParseMappings("")
	require.NoError(t, err)
	assert.Nil(t, mappings)
}

func TestParseMappingsInvalid(t *testing.T) {
	_, err := ParseMappings("{not json")
	assert.Error(t, err)
}

func TestEncodeMappingsRoundTrip(t *testing.T) {
	in := []ColumnMapping{
		{Field: "serviceName", Column: "Hizmet"},
		{Field: "doctorName", Column: "Doktor"},
	}

	raw, err := EncodeMappings(in)
	require.NoError(t, err)

	out, err := ParseMappings(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
