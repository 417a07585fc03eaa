// Package flatten expands a hierarchical document.Value into a set of flat
// (path -> scalar) records. Objects combine their children by Cartesian
// product; arrays combine their elements by union, each tagged with the
// "[*]" path marker used by the IND engine and the flatten CLI subcommand.
// Conflicting keys merge with later keys winning; empty objects and arrays
// contribute an empty-string sentinel value.
package flatten

import "docprofile/document"

// Record is one flattened row: a path-keyed map of scalar values.
type Record map[string]string

// Flatten returns every flat record produced by expanding v.
func Flatten(v document.Value) []Record {
	return flattenWithPath(v, "")
}

func flattenWithPath(v document.Value, path string) []Record {
	switch v.Kind {
	case document.KindObject:
		if len(v.Object) == 0 {
			return []Record{{path: ""}}
		}
		return flattenObject(v, path)

	case document.KindArray:
		if len(v.Array) == 0 {
			return []Record{{path: ""}}
		}
		return flattenArray(v, path)

	case document.KindScalar:
		return []Record{{path: v.Scalar}}

	default: // KindNull
		return []Record{{path: ""}}
	}
}

func flattenObject(v document.Value, path string) []Record {
	prefix := path
	if prefix != "" {
		prefix += "."
	}

	keys := v.SortedKeys()
	perKey := make([][]Record, len(keys))
	for i, k := range keys {
		perKey[i] = flattenWithPath(v.Object[k], prefix+k)
	}

	return cartesianMerge(perKey)
}

func flattenArray(v document.Value, path string) []Record {
	childPath := path + "[*]"
	var records []Record
	for _, elem := range v.Array {
		records = append(records, flattenWithPath(elem, childPath)...)
	}
	return records
}

// cartesianMerge combines one record set per object key into the product of
// all combinations, merging each tuple into a single record (later keys in
// the tuple override earlier ones on a path collision).
func cartesianMerge(perKey [][]Record) []Record {
	combined := []Record{{}}

	for _, recordsForKey := range perKey {
		var next []Record
		for _, acc := range combined {
			for _, rec := range recordsForKey {
				merged := make(Record, len(acc)+len(rec))
				for k, v := range acc {
					merged[k] = v
				}
				for k, v := range rec {
					merged[k] = v
				}
				next = append(next, merged)
			}
		}
		combined = next
	}

	return combined
}
