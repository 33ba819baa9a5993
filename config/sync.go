package config

// Reconcile synchronizes the sections of an existing store against the
// discovered address set and returns a new store:
//
//   - union: a discovered address with no section is added with empty
//     options, ready for a human to fill in
//   - difference: an existing section whose address was not discovered is
//     removed, except the reserved colors section, which is always kept
//   - intersection: sections present on both sides are carried over with
//     their option values untouched
//
// The result's sections are ordered category, then service, then component,
// so regenerating the configuration stays diffable. Reconcile is purely
// structural and idempotent: reconciling its own output against the same
// discovered set changes nothing.
func Reconcile(store *Store, discovered []Path) *Store {
	paths := make([]Path, len(discovered))
	copy(paths, discovered)
	sortPaths(paths)

	out := &Store{
		index:     make(map[string]int, len(paths)),
		aliases:   make(map[string]string, len(store.aliases)),
		aliasOrd:  append([]string(nil), store.aliasOrd...),
		hasColors: store.hasColors,
	}

	for name, value := range store.aliases {
		out.aliases[name] = value
	}

	for _, path := range paths {
		if _, dup := out.index[path.canon()]; dup {
			continue
		}

		options := map[string]string{}

		if existing, ok := store.Lookup(path); ok {
			for name, value := range existing {
				options[name] = value
			}
		}

		out.index[path.canon()] = len(out.sections)
		out.sections = append(out.sections, Section{Path: path, Options: options})
	}

	return out
}
