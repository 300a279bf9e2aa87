package friends

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
friends:
  - name: Sam
    gender: male
    best: true
    friends: [Mat, Sally]
  - name: Sally
    gender: female
  - name: Mat
    gender: Male
    friends: [Sam]
`

func TestLoadDirectoryYAML(t *testing.T) {
	dir, err := LoadDirectory(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, dir.Len())
	assert.Equal(t, []string{"Sam"}, dir.Best())

	mat, ok := dir.Lookup("Mat")
	require.True(t, ok)
	assert.Equal(t, Male, mat.Gender)
	assert.Equal(t, []string{"Sam"}, mat.Friends)
}

func TestLoadDirectoryJSON(t *testing.T) {
	input := `{"friends": [
		{"name": "Sam", "gender": "male", "best": true, "friends": ["Sally"]},
		{"name": "Sally", "gender": "female"}
	]}`

	dir, err := LoadDirectory(strings.NewReader(input))
	require.NoError(t, err)

	it, err := NewIterator(dir, AcceptAll{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sam", "Sally"}, names(it.All()))
}

func TestLoadDirectoryEmpty(t *testing.T) {
	dir, err := LoadDirectory(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, dir.Len())
}

func TestLoadDirectoryErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "friends:\n  - name: Sam\n    gender: male\n    age: 30\n",
		"bad gender":     "friends:\n  - name: Sam\n    gender: robot\n",
		"missing gender": "friends:\n  - name: Sam\n",
		"missing name":   "friends:\n  - gender: male\n",
		"bad syntax":     "friends: [",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadDirectory(strings.NewReader(input))
			assert.Error(t, err)
		})
	}

	_, err := LoadDirectory(strings.NewReader("friends:\n  - name: Sam\n    gender: robot\n"))
	assert.ErrorIs(t, err, ErrInvalidGender)
}

func TestWriteDirectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDirectory(&buf, NewDirectory(sampleRecords())))

	dir, err := LoadDirectory(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), dir.Records())
}
