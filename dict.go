package binon

import (
	"io"
	"math/big"
)

// writeGDictPayload writes a dict's raw entries (spec.md §4.8's GDict/DictObj
// base form): a VarUInt entry count, then the full keys region, then the
// full values region — two parallel sequences sharing one length, not
// interleaved key/value pairs. It is also reused, unchanged, as the nested
// payload an SList's shared Dict tag points at.
func writeGDictPayload(w io.Writer, entries []DictEntry, opts codecOptions) error {
	if err := writeVarUint(w, big.NewInt(int64(len(entries)))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := encodeValue(w, e.Key, opts); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if err := encodeValue(w, e.Value, opts); err != nil {
			return err
		}
	}
	return nil
}

func readGDictPayload(r io.Reader, opts codecOptions) ([]DictEntry, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "dict: length too large"}
	}
	count := int(n.Int64())
	entries := make([]DictEntry, count)
	for i := 0; i < count; i++ {
		k, err := decodeValue(r, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Key = k
	}
	for i := 0; i < count; i++ {
		v, err := decodeValue(r, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Value = v
	}
	return entries, nil
}

// writeSKDict emits the SKDict form (spec.md §4.8): entries share a single
// key-kind tag ahead of the list, then the full keys region (each key as
// bare payload), then the full values region (still fully self-describing
// since value kinds may vary).
func writeSKDict(w io.Writer, entries []DictEntry, keyKind Kind, opts codecOptions) error {
	if err := writeVarUint(w, big.NewInt(int64(len(entries)))); err != nil {
		return err
	}
	tag, err := slistTag(keyKind)
	if err != nil {
		return err
	}
	if err := tag.write(w); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeElemPayload(w, e.Key, opts); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if err := encodeValue(w, e.Value, opts); err != nil {
			return err
		}
	}
	return nil
}

func readSKDict(r io.Reader, opts codecOptions) ([]DictEntry, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "skdict: length too large"}
	}
	count := int(n.Int64())
	keyTag, err := readCodeByte(r)
	if err != nil {
		return nil, err
	}
	entries := make([]DictEntry, count)
	for i := 0; i < count; i++ {
		k, err := readElemPayload(r, keyTag, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Key = k
	}
	for i := 0; i < count; i++ {
		v, err := decodeValue(r, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Value = v
	}
	return entries, nil
}

// writeSDict emits the most compact dict form: both key kind and value kind
// are shared across every entry, tagged once each ahead of the entries, then
// the full keys region followed by the full values region.
func writeSDict(w io.Writer, entries []DictEntry, keyKind, valKind Kind, opts codecOptions) error {
	if err := writeVarUint(w, big.NewInt(int64(len(entries)))); err != nil {
		return err
	}
	keyTag, err := slistTag(keyKind)
	if err != nil {
		return err
	}
	if err := keyTag.write(w); err != nil {
		return err
	}
	valTag, err := slistTag(valKind)
	if err != nil {
		return err
	}
	if err := valTag.write(w); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeElemPayload(w, e.Key, opts); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if err := writeElemPayload(w, e.Value, opts); err != nil {
			return err
		}
	}
	return nil
}

func readSDict(r io.Reader, opts codecOptions) ([]DictEntry, error) {
	n, err := readVarUint(r)
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() {
		return nil, &ParseError{Offset: -1, Reason: "sdict: length too large"}
	}
	count := int(n.Int64())
	keyTag, err := readCodeByte(r)
	if err != nil {
		return nil, err
	}
	valTag, err := readCodeByte(r)
	if err != nil {
		return nil, err
	}
	entries := make([]DictEntry, count)
	for i := 0; i < count; i++ {
		k, err := readElemPayload(r, keyTag, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Key = k
	}
	for i := 0; i < count; i++ {
		v, err := readElemPayload(r, valTag, opts)
		if err != nil {
			return nil, err
		}
		entries[i].Value = v
	}
	return entries, nil
}
