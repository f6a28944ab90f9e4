package entry

import (
	"encoding/json"
)

// MarshalList serialises the collection in order.
func MarshalList(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// legacyEntry is the earlier single-text schema: {id, date, text, mood, photoData}.
type legacyEntry struct {
	Entry
	Text *string `json:"text"`
}

// UnmarshalList deserialises a collection and upgrades single-text entries by
// moving their text into GratefulFor. Photo attachments are dropped.
func UnmarshalList(data []byte) ([]*Entry, error) {
	if len(data) == 0 {
		return []*Entry{}, nil
	}
	var wire []legacyEntry
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	entries := make([]*Entry, 0, len(wire))
	for i := range wire {
		e := wire[i].Entry
		if wire[i].Text != nil && e.IsEmpty() {
			e.GratefulFor = *wire[i].Text
		}
		entries = append(entries, &e)
	}
	return entries, nil
}
