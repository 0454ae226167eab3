package profile

import "sort"

// FromRow maps positional spreadsheet cells onto a Profile using the column
// order of Fields. Missing trailing cells leave their fields empty; extra
// cells are ignored.
func FromRow(row []string) Profile {
	var p Profile
	for i, f := range Fields() {
		if i >= len(row) {
			break
		}
		p.Set(f, row[i])
	}
	return p
}

// FromRows normalizes every row in order.
func FromRows(rows [][]string) []Profile {
	out := make([]Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}

// FromRecord maps a header-keyed record onto a Profile. Keys are matched with
// ParseField; keys that name no field are dropped. When several keys match
// one field, the exact field name wins, then the lowest key in sort order.
func FromRecord(rec map[string]string) Profile {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var p Profile
	set := make(map[Field]bool, len(rec))
	for _, f := range Fields() {
		if v, ok := rec[string(f)]; ok {
			p.Set(f, v)
			set[f] = true
		}
	}
	for _, k := range keys {
		if f, ok := ParseField(k); ok && !set[f] {
			p.Set(f, rec[k])
			set[f] = true
		}
	}
	return p
}

// FromRecords normalizes every record in order.
func FromRecords(recs []map[string]string) []Profile {
	out := make([]Profile, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromRecord(rec))
	}
	return out
}
