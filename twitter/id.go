package twitter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a 64-bit Twitter object id. The API encodes ids as decimal strings
// to avoid precision loss in JSON number handling, but some payloads still
// carry bare numbers, so both forms unmarshal.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) > 1 && s[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("twitter: invalid id %s: %w", string(b), err)
	}
	*id = ID(n)
	return nil
}

func joinIDs(ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
