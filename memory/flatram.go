package memory

// FlatRAM is a Bank backed by a full 64 KiB flat byte array with no
// shadowing or mapping. It is the backing store for the bus package's
// reference implementations.
type FlatRAM struct {
	data [65536]uint8
}

// NewFlatRAM returns a powered-on FlatRAM.
func NewFlatRAM() *FlatRAM {
	r := &FlatRAM{}
	r.PowerOn()
	return r
}

// Read implements Bank.
func (r *FlatRAM) Read(addr uint16) uint8 {
	return r.data[addr]
}

// Write implements Bank.
func (r *FlatRAM) Write(addr uint16, val uint8) {
	r.data[addr] = val
}

// PowerOn implements Bank. FlatRAM resets to all zeros; callers wanting
// randomized power-on garbage should wrap or replace it.
func (r *FlatRAM) PowerOn() {
	for i := range r.data {
		r.data[i] = 0
	}
}
