package goshape

// Locate walks the schema along path and returns the single node governing
// that path, resolving unions against observed along the way. A nil result is
// not an error: it means no rule governs the path and the caller applies its
// unknown-key policy.
//
// observed is the value currently sitting at path; pass the missing sentinel
// (or anything the resolver does not recognize) when it is not yet known.
func Locate(s Schema, path []string, observed any) *Node {
	members := s.Members()
	if len(members) == 1 {
		return locateFields(members[0], path, observed)
	}
	// Schema union: depth-first, first member that resolves wins.
	for _, m := range members {
		if n := locateFields(m, path, observed); n != nil {
			return n
		}
	}
	return nil
}

func locateType(t Type, path []string, observed any) *Node {
	alts := t.Alternatives()
	if len(path) == 0 {
		if len(alts) == 1 {
			return alts[0]
		}
		return Resolve(alts, observed)
	}
	if len(alts) > 1 {
		for _, alt := range alts {
			if n := locateNode(alt, path, observed); n != nil {
				return n
			}
		}
		return nil
	}
	return locateNode(alts[0], path, observed)
}

func locateNode(n *Node, path []string, observed any) *Node {
	if len(path) == 0 {
		return n
	}
	switch n.Kind {
	case KindObject:
		// Descend into the property mapping with the full remaining path;
		// the object node itself does not consume a key.
		return locateFields(n.Properties, path, observed)
	case KindArray:
		if isIndexKey(path[0]) && n.Items != nil {
			return locateType(n.Items, path[1:], observed)
		}
		return nil
	default:
		return nil
	}
}

func locateFields(p Properties, path []string, observed any) *Node {
	if len(path) == 0 {
		// A bare field mapping is not a single node.
		return nil
	}
	t, ok := p[path[0]]
	if !ok {
		return nil
	}
	return locateType(t, path[1:], observed)
}
