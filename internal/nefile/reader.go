package nefile

// checkBounds validates that the byte range [start, start+length) lies
// within a buffer of bufLen bytes. All variable-offset reads route through
// this check before slicing, it is the only defense against malformed
// length and offset fields in untrusted input.
func checkBounds(bufLen, start, length int) error {
	if start < 0 || length < 0 || start > bufLen || bufLen-start < length {
		return formatError(ErrOutOfBounds, start)
	}
	return nil
}

// slice returns data[start : start+length] after bounds checking.
func slice(data []byte, start, length int) ([]byte, error) {
	if err := checkBounds(len(data), start, length); err != nil {
		return nil, err
	}
	return data[start : start+length], nil
}
