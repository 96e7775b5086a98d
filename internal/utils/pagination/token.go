package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeCursorToken creates a token pointing after the document lastID, which sat at
// position offset-1 of the previous page's result set.
func EncodeCursorToken(offset int, lastID string) string {
	return EncodeMultiFieldToken(strconv.Itoa(offset), lastID)
}

// DecodeCursorToken is the inverse of EncodeCursorToken.
func DecodeCursorToken(token string) (int, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, "", err
	}
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, "", fmt.Errorf("invalid pagination token format (offset parse)")
	}
	return offset, parts[1], nil
}

// Resume finds where the next page starts in ids. The position right after lastID wins
// so deletions between requests neither skip nor repeat documents; offset is the fallback.
func Resume(ids []string, offset int, lastID string) int {
	if lastID != "" {
		for i, id := range ids {
			if id == lastID {
				return i + 1
			}
		}
	}
	return min(offset, len(ids))
}

// Page returns the bounds of one page of size limit starting at start,
// and whether another page follows.
func Page(total, start, limit int) (from, to int, more bool) {
	from = min(max(start, 0), total)
	to = min(from+limit, total)
	return from, to, to < total
}
