package resolver

// Derive groups fragments by Key and folds every group, starting from the
// zero value, through Merge. Groups are returned in order of first
// appearance. The first conflict aborts the whole reduction.
func Derive[T Mergeable[T]](fragments []T) ([]T, error) {
	if len(fragments) == 0 {
		return nil, nil
	}

	acc := make(map[string]T, len(fragments))
	var order []string
	for _, f := range fragments {
		key := f.Key()
		cur, seen := acc[key]
		if !seen {
			order = append(order, key)
		}
		merged, err := cur.Merge(f)
		if err != nil {
			return nil, err
		}
		acc[key] = merged
	}

	out := make([]T, 0, len(order))
	for _, key := range order {
		out = append(out, acc[key])
	}
	return out, nil
}
