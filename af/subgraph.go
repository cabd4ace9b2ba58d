package af

// Subgraph is the subgraph of a parent framework induced by a node
// subset S: it keeps exactly the attacks with both endpoints in S.
// The parent's adjacency is shared, not copied; membership is a bitset
// test, so a Subgraph costs O(|S|) to build regardless of |R|.
type Subgraph struct {
	parent  *AF
	members *ArgSet
	ordered []Argument
}

// Induced returns the subgraph of f induced by members. Arguments
// outside the framework are ignored. The member set is cloned, so the
// caller may reuse it afterwards.
// Complexity: O(|members|).
func (f *AF) Induced(members *ArgSet) *Subgraph {
	kept := NewArgSet(f.n)
	for _, a := range members.Members() {
		if f.Contains(a) {
			kept.Add(a)
		}
	}

	return &Subgraph{parent: f, members: kept, ordered: kept.Members()}
}

// InducedOf returns the subgraph induced by an explicit argument list.
func (f *AF) InducedOf(args ...Argument) *Subgraph {
	s := NewArgSet(f.n)
	for _, a := range args {
		s.Add(a)
	}

	return f.Induced(s)
}

// Restrict returns the subgraph of the same parent induced by the
// members of g that also belong to keep. Used for reducts, where the
// candidate set only ever shrinks.
func (g *Subgraph) Restrict(keep *ArgSet) *Subgraph {
	kept := NewArgSet(g.parent.n)
	for _, a := range g.ordered {
		if keep.Contains(a) {
			kept.Add(a)
		}
	}

	return &Subgraph{parent: g.parent, members: kept, ordered: kept.Members()}
}

// Len returns the number of member arguments.
func (g *Subgraph) Len() int { return len(g.ordered) }

// Capacity returns the parent framework's argument-id upper bound.
func (g *Subgraph) Capacity() int { return g.parent.n }

// Arguments returns the members in ascending order.
// The returned slice is shared; callers must not mutate it.
func (g *Subgraph) Arguments() []Argument { return g.ordered }

// Contains reports whether a is a member of the subgraph.
func (g *Subgraph) Contains(a Argument) bool { return g.members.Contains(a) }

// Attackers returns the member arguments attacking a, ascending.
func (g *Subgraph) Attackers(a Argument) []Argument {
	if !g.members.Contains(a) {
		return nil
	}
	var out []Argument
	for _, b := range g.parent.Attackers(a) {
		if g.members.Contains(b) {
			out = append(out, b)
		}
	}

	return out
}

// Attackees returns the member arguments attacked by a, ascending.
func (g *Subgraph) Attackees(a Argument) []Argument {
	if !g.members.Contains(a) {
		return nil
	}
	var out []Argument
	for _, b := range g.parent.Attackees(a) {
		if g.members.Contains(b) {
			out = append(out, b)
		}
	}

	return out
}

// HasAttack reports whether both endpoints are members and from
// attacks to in the parent relation.
func (g *Subgraph) HasAttack(from, to Argument) bool {
	return g.members.Contains(from) && g.members.Contains(to) && g.parent.HasAttack(from, to)
}

var _ View = (*Subgraph)(nil)
