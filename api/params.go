package api

// Param is one (name, value) pair of a parameter list.
type Param struct {
	Name  string
	Value Value
}

// Parameters is an ordered multimap of names to Values, used for query
// strings and request headers. Add appends and never deduplicates;
// iteration order equals insertion order, which keeps URL construction
// deterministic. The zero value is ready to use.
type Parameters struct {
	list []Param
}

// NewParameters builds a parameter list from the given pairs, preserving
// their order.
func NewParameters(pairs ...Param) Parameters {
	p := Parameters{list: make([]Param, 0, len(pairs))}
	p.list = append(p.list, pairs...)
	return p
}

// Add appends a parameter. Duplicate names are kept; a later Add never
// overwrites an earlier one.
func (p *Parameters) Add(name string, value Value) {
	p.list = append(p.list, Param{Name: name, Value: value})
}

// Len returns the number of parameters, counting duplicates.
func (p Parameters) Len() int { return len(p.list) }

// IsEmpty reports whether the list holds no parameters.
func (p Parameters) IsEmpty() bool { return len(p.list) == 0 }

// Pairs returns the parameters in insertion order. The returned slice is a
// copy; mutating it does not affect the list.
func (p Parameters) Pairs() []Param {
	out := make([]Param, len(p.list))
	copy(out, p.list)
	return out
}

// Get returns the value of the first parameter with the given name.
func (p Parameters) Get(name string) (Value, bool) {
	for _, pair := range p.list {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return Value{}, false
}
