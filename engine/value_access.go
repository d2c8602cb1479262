package engine

// Get returns a borrowed view of the element addressed by key: a Map is
// keyed by String, a List is indexed by Int. A key of the wrong type for
// the container fails WrongKeyType; a well-typed key outside the
// container's domain (a negative or too-large index, an absent map key)
// fails InvalidAcces.
func (v Value) Get(key Value) (Value, error) {
	switch v.kind {
	case TypeMap:
		k, err := v.mapKey(key)
		if err != nil {
			return Value{}, err
		}
		val, ok := v.MapGet(k)
		if !ok {
			return Value{}, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
		}
		return val, nil
	case TypeList:
		i, err := v.listIndex(key)
		if err != nil {
			return Value{}, err
		}
		return v.list[i], nil
	default:
		return Value{}, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
	}
}

// GetMut returns a pointer to the element's storage location so it may be
// overwritten in place.
func (v Value) GetMut(key Value) (*Value, error) {
	switch v.kind {
	case TypeMap:
		k, err := v.mapKey(key)
		if err != nil {
			return nil, err
		}
		p, ok := v.m[k]
		if !ok {
			return nil, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
		}
		return p, nil
	case TypeList:
		i, err := v.listIndex(key)
		if err != nil {
			return nil, err
		}
		return &v.list[i], nil
	default:
		return nil, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
	}
}

// GetTake removes and returns the element addressed by key.
func (v *Value) GetTake(key Value) (Value, error) {
	switch v.kind {
	case TypeMap:
		k, err := v.mapKey(key)
		if err != nil {
			return Value{}, err
		}
		p, ok := v.m[k]
		if !ok {
			return Value{}, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
		}
		delete(v.m, k)
		return *p, nil
	case TypeList:
		i, err := v.listIndex(key)
		if err != nil {
			return Value{}, err
		}
		taken := v.list[i]
		v.list = append(v.list[:i], v.list[i+1:]...)
		return taken, nil
	default:
		return Value{}, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
	}
}

func (v Value) mapKey(key Value) (string, error) {
	if key.kind != TypeString {
		return "", &Error{Kind: ErrWrongKeyType, Key: key, Container: v.kind}
	}
	return key.s, nil
}

func (v Value) listIndex(key Value) (int, error) {
	if key.kind != TypeInt {
		return 0, &Error{Kind: ErrWrongKeyType, Key: key, Container: v.kind}
	}
	i := key.i
	if i < 0 || i >= int64(len(v.list)) {
		return 0, &Error{Kind: ErrInvalidAcces, Key: key, Container: v.kind}
	}
	return int(i), nil
}
