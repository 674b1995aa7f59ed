package resolver

// ValidateNamespaces checks that no id is declared in two entity kinds.
// Start ids are checked against lazy ids first, then the union of both
// against bundle ids. Duplicates within one kind are allowed here; they
// are folded by Derive.
func ValidateNamespaces(startIDs, lazyIDs, bundleIDs []string) error {
	owner := make(map[string]string, len(startIDs)+len(lazyIDs))
	for _, id := range startIDs {
		owner[id] = CategoryStart
	}

	for _, id := range lazyIDs {
		if _, ok := owner[id]; ok {
			return namespaceConflict(id, CategoryStart, CategoryLazy)
		}
	}
	for _, id := range lazyIDs {
		owner[id] = CategoryLazy
	}

	for _, id := range bundleIDs {
		if category, ok := owner[id]; ok {
			return namespaceConflict(id, category, CategoryBundle)
		}
	}
	return nil
}
