package engine

// Partition distinguishes the two halves of a variable Map: the read-write
// slots owned exclusively by a running program, and the read-only slots
// shared across clones of a program's variables.
type Partition int

const (
	RW Partition = iota
	RO
)

func (p Partition) String() string {
	if p == RO {
		return "Ro"
	}
	return "Rw"
}

// Id is an opaque handle into a Map: a partition tag plus an index into
// that partition's slice.
type Id struct {
	Partition Partition
	Index     int
}

// Map is the variable environment threaded through a running program. The
// rw slice is owned by the running program instance and mutates during
// execution. The ro slice is never written through the public API (ReadMut
// always fails WriteToReadOnly for an Ro id), so it may be aliased cheaply
// across clones of a Map without a defensive copy.
type Map struct {
	rw []Value
	ro []Value
}

// Read returns the value stored at id, failing UnknownVariable if the index
// is out of range for the partition indicated by id's tag.
func (m *Map) Read(id Id) (Value, error) {
	slice := m.partition(id.Partition)
	if id.Index < 0 || id.Index >= len(slice) {
		return Value{}, &Error{Kind: ErrUnknownVariable, Id: id}
	}
	return slice[id.Index], nil
}

// ReadMut returns a pointer to the storage location of id so it may be
// overwritten in place. It fails WriteToReadOnly for an Ro id, and
// UnknownVariable for an out-of-range index.
func (m *Map) ReadMut(id Id) (*Value, error) {
	if id.Partition == RO {
		return nil, &Error{Kind: ErrWriteToReadOnly, Id: id}
	}
	if id.Index < 0 || id.Index >= len(m.rw) {
		return nil, &Error{Kind: ErrUnknownVariable, Id: id}
	}
	return &m.rw[id.Index], nil
}

// MaybeRead substitutes the value a variable holds when v is Value::Id;
// every other value is returned unchanged.
func (m *Map) MaybeRead(v Value) (Value, error) {
	if v.kind != TypeId {
		return v, nil
	}
	stored, err := m.Read(v.id)
	if err != nil {
		return Value{}, err
	}
	return stored.deepCopy(), nil
}

func (m *Map) partition(p Partition) []Value {
	if p == RO {
		return m.ro
	}
	return m.rw
}

// clone produces a Map suitable for an independent run: the rw partition is
// deep-copied (it will mutate during execution) while the ro partition is
// aliased (it never mutates, so sharing the backing array is safe and
// cheap — the "shared by reference-count semantics" of spec.md §3, modeled
// here as a plain shared Go slice since Ro is never observed to change).
func (m Map) clone() Map {
	rw := make([]Value, len(m.rw))
	for i, v := range m.rw {
		rw[i] = v.deepCopy()
	}
	return Map{rw: rw, ro: m.ro}
}

// MapBuilder accumulates the two partitions of a Map before it is frozen by
// Build. Reserved slots (ReserveRW/ReserveRO) may be filled in later with
// Set — the mechanism used to build a self-referential loop body: an
// instruction list is built referencing an Ro id, then stored into that
// same id, making every iteration read back the instruction that contains
// it.
type MapBuilder struct {
	rw []Value
	ro []Value
}

// NewMapBuilder returns an empty builder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{}
}

// InsertRW appends a read-write slot initialized to v and returns its id.
func (b *MapBuilder) InsertRW(v Value) Id {
	id := Id{Partition: RW, Index: len(b.rw)}
	b.rw = append(b.rw, v)
	return id
}

// ReserveRW is InsertRW(None).
func (b *MapBuilder) ReserveRW() Id {
	return b.InsertRW(None())
}

// InsertRO appends a read-only slot initialized to v and returns its id.
func (b *MapBuilder) InsertRO(v Value) Id {
	id := Id{Partition: RO, Index: len(b.ro)}
	b.ro = append(b.ro, v)
	return id
}

// ReserveRO is InsertRO(None).
func (b *MapBuilder) ReserveRO() Id {
	return b.InsertRO(None())
}

// Set overwrites the slot addressed by id, which must already have been
// produced by this builder (via Insert* or Reserve*).
func (b *MapBuilder) Set(id Id, v Value) error {
	var slice []Value
	switch id.Partition {
	case RO:
		slice = b.ro
	default:
		slice = b.rw
	}
	if id.Index < 0 || id.Index >= len(slice) {
		return &Error{Kind: ErrUnknownVariable, Id: id}
	}
	slice[id.Index] = v
	return nil
}

// Build freezes the builder into a Map. The partitions are copied so that
// further use of the builder cannot alias the built Map.
func (b *MapBuilder) Build() Map {
	rw := make([]Value, len(b.rw))
	copy(rw, b.rw)
	ro := make([]Value, len(b.ro))
	copy(ro, b.ro)
	return Map{rw: rw, ro: ro}
}
