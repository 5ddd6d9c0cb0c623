package binon

// The specialization optimizer (spec.md §4.10) decides, for a List or Dict
// about to be encoded with Options.Specialize set, whether every element
// (or every key, or every key and value) shares a single representable
// kind — and if so, which shared CodeByte tag to use instead of paying for
// one per element.

// listSpecialization reports whether elems may be written as an SList, and
// if so which shared Kind to tag them with. An SList's element payloads are
// always each kind's base (unspecialized) form — the tag only elides the
// per-element CodeByte, so homogeneity of Kind is the only requirement.
func listSpecialization(elems []Value) (Kind, bool) {
	if len(elems) == 0 {
		return 0, false
	}
	kind := elems[0].Kind()
	for _, e := range elems[1:] {
		if e.Kind() != kind {
			return 0, false
		}
	}
	return kind, true
}

// dictSpecialization reports whether entries may be written as SKDict (keys
// share a kind) or SDict (keys and values both share a kind).
func dictSpecialization(entries []DictEntry) (keyKind Kind, valKind Kind, sameKey, sameVal bool) {
	if len(entries) == 0 {
		return 0, 0, false, false
	}
	keyKind = entries[0].Key.Kind()
	valKind = entries[0].Value.Kind()
	sameKey, sameVal = true, true
	for _, e := range entries[1:] {
		if e.Key.Kind() != keyKind {
			sameKey = false
		}
		if e.Value.Kind() != valKind {
			sameVal = false
		}
	}
	return keyKind, valKind, sameKey, sameVal
}
