package control

// elemsOf returns the stored elements after checking the tag. The result
// aliases the value's storage and must not escape unmodified.
func elemsOf[T Element](v Value) ([]T, error) {
	want := tagOf[T]()
	if v.tag != want {
		return nil, &InvalidTypeError{Expected: want, Found: v.tag}
	}

	elems, _ := v.elems.([]T)

	return elems, nil
}

// As extracts a scalar. The value must carry T's tag and exactly one element.
func As[T Element](v Value) (T, error) {
	var zero T

	elems, err := elemsOf[T](v)
	if err != nil {
		return zero, err
	}

	if len(elems) != 1 {
		return zero, &InvalidLengthError{Expected: 1, Found: len(elems)}
	}

	return elems[0], nil
}

// AsArray extracts exactly n elements.
func AsArray[T Element](v Value, n int) ([]T, error) {
	elems, err := elemsOf[T](v)
	if err != nil {
		return nil, err
	}

	if len(elems) != n {
		return nil, &InvalidLengthError{Expected: n, Found: len(elems)}
	}

	return append([]T(nil), elems...), nil
}

// AsMatrix extracts rows*cols elements and splits them row-major.
func AsMatrix[T Element](v Value, rows, cols int) ([][]T, error) {
	flat, err := AsArray[T](v, rows*cols)
	if err != nil {
		return nil, err
	}

	res := make([][]T, rows)
	for i := range res {
		res[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return res, nil
}

// AsSlice extracts any number of elements, including none.
func AsSlice[T Element](v Value) ([]T, error) {
	elems, err := elemsOf[T](v)
	if err != nil {
		return nil, err
	}

	return append(make([]T, 0, len(elems)), elems...), nil
}

func AsString(v Value) (string, error) {
	if v.tag != TagString {
		return "", &InvalidTypeError{Expected: TagString, Found: v.tag}
	}

	s, _ := v.elems.(string)

	return s, nil
}
