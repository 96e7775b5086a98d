package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	token := EncodeMultiFieldToken(fields...)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decoded, "Fields should match after decode")

	// strings.Split of an empty string yields one empty field
	decodedEmpty, err := DecodeMultiFieldToken(EncodeMultiFieldToken())
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, decodedEmpty)

	_, err = DecodeMultiFieldToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")
}

func TestCursorToken(t *testing.T) {
	token := EncodeCursorToken(20, "5b0e6f0e-4a9b-4c55-9d4e-4d7c3f3f1a11")

	offset, lastID, err := DecodeCursorToken(token)
	require.NoError(t, err)
	assert.Equal(t, 20, offset)
	assert.Equal(t, "5b0e6f0e-4a9b-4c55-9d4e-4d7c3f3f1a11", lastID)

	_, _, err = DecodeCursorToken(EncodeMultiFieldToken("only-one"))
	assert.ErrorContains(t, err, "split")

	_, _, err = DecodeCursorToken(EncodeMultiFieldToken("-3", "x"))
	assert.ErrorContains(t, err, "offset parse")
}

func TestResume(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, 2, Resume(ids, 2, "b"))
	// "b" was deleted and everything shifted left: fall back to the offset
	assert.Equal(t, 2, Resume([]string{"a", "c", "d", "e"}, 2, "b"))
	// something was inserted before the cursor: follow the id
	assert.Equal(t, 3, Resume([]string{"z", "a", "b", "c"}, 2, "b"))
	assert.Equal(t, 5, Resume(ids, 99, ""))
}

func TestPage(t *testing.T) {
	from, to, more := Page(5, 0, 2)
	assert.Equal(t, []int{0, 2}, []int{from, to})
	assert.True(t, more)

	from, to, more = Page(5, 4, 2)
	assert.Equal(t, []int{4, 5}, []int{from, to})
	assert.False(t, more)

	from, to, more = Page(0, 0, 10)
	assert.Equal(t, []int{0, 0}, []int{from, to})
	assert.False(t, more)
}
