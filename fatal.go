package bytecodec

import "fmt"

// FatalError is the value recovered from a panic raised by Fatal. It
// marks unrecoverable conditions: bit-length overflow, Huffman
// node-pool exhaustion, a malformed tree prefix, or premature end of
// stream.
//
// Fatal itself never returns control to its caller — it always panics.
// A handful of call sites (the decode loops in package huffman and
// package rice) wrap themselves in a deferred recover so that a
// FatalError surfaces as a normal error return alongside whatever
// partial output was already produced, for cases like output-capacity
// exhaustion or premature end of stream where some output already
// exists. Anywhere else a FatalError propagates to the caller of this
// module like any other panic — the default is to print and abort the
// process, not to recover.
type FatalError struct {
	Message string
}

func (this *FatalError) Error() string {
	return this.Message
}

// Fatal raises a FatalError. It never returns.
func Fatal(format string, args ...interface{}) {
	panic(&FatalError{Message: fmt.Sprintf(format, args...)})
}

// Recover, deferred at the top of a decode loop, turns a panicking
// FatalError into a plain error assigned to *errp, leaving any other
// panic value to propagate unchanged. Typical use:
//
//	func (d *Decoder) Decode(out []byte) (n int, err error) {
//	    defer bytecodec.Recover(&err)
//	    ...
//	    return n, nil
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	fe, ok := r.(*FatalError)
	if !ok {
		panic(r)
	}

	*errp = fe
}
