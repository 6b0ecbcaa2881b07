package auditlog

// MergeConverters combines per-target-type converter tables into one
// fallback table. A key first seen is recorded with its converter; seeing
// it again with the identical converter instance is a no-op; seeing it
// with a different instance permanently excludes the key, since distinct
// target types legitimately reuse wire keys (name, id, type) with
// different semantics and a safe fallback must refuse to guess. Once a
// key is excluded no later table can reintroduce it.
func MergeConverters(tables ...ChangeConverterTable) ChangeConverterTable {
	merged, _ := mergeConverters(tables...)
	return merged
}

func mergeConverters(tables ...ChangeConverterTable) (ChangeConverterTable, map[string]struct{}) {
	merged := make(ChangeConverterTable)
	ambiguous := make(map[string]struct{})

	for _, table := range tables {
		for key, converter := range table {
			if _, excluded := ambiguous[key]; excluded {
				continue
			}
			existing, seen := merged[key]
			if !seen {
				merged[key] = converter
				continue
			}
			if existing == converter {
				continue
			}
			delete(merged, key)
			ambiguous[key] = struct{}{}
		}
	}

	return merged, ambiguous
}
