package fix

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"main/internal/schema"
)

// ErrMissingPrice reports a limit order (40=2) without a price tag (44).
var ErrMissingPrice = errors.New("missing required tag 44 (price) for limit order")

// MissingTagsError reports a 35=D message missing mandatory tags.
type MissingTagsError struct {
	Tags []Tag
}

func (e MissingTagsError) Error() string {
	return fmt.Sprintf("missing required tags: %v", e.Tags)
}

// DecodeError is the single boundary error kind for faults that are not
// part of the validation taxonomy.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return "decode fix message, err: " + e.Err.Error()
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// FieldMap holds decoded tag=value pairs. It is produced fresh per message
// and owned by the caller.
type FieldMap map[Tag]string

// Get returns the value for a tag.
func (m FieldMap) Get(tag Tag) (string, bool) {
	v, ok := m[tag]
	return v, ok
}

// MsgType returns the tag 35 value, empty when absent.
func (m FieldMap) MsgType() string {
	return m[TagMsgType]
}

// IsNewOrder reports whether the message is a New Order Single.
func (m FieldMap) IsNewOrder() bool {
	return m.MsgType() == MsgTypeNewOrder
}

// Decode splits a raw tag=value message into a FieldMap and validates tag
// presence. Segments without a key/value separator are skipped, and the last
// occurrence of a duplicate tag wins. Validation runs on the finished map:
// a 35=D message must carry the full mandatory tag set, and any 40=2 message
// must carry a price. Decode has no side effects.
func Decode(raw string) (FieldMap, error) {
	segments := strings.Split(raw, FieldSeparator)
	fields := make(FieldMap, len(segments))
	for _, segment := range segments {
		tag, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		fields[Tag(tag)] = value
	}

	if fields.IsNewOrder() {
		var missing []Tag
		for _, tag := range requiredNewOrderTags {
			if _, ok := fields[tag]; !ok {
				missing = append(missing, tag)
			}
		}
		if len(missing) > 0 {
			sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
			return nil, MissingTagsError{Tags: missing}
		}
	}

	if fields[TagOrdType] == schema.WireOrdTypeLimit {
		if _, ok := fields[TagPrice]; !ok {
			return nil, ErrMissingPrice
		}
	}

	return fields, nil
}
