package scanner

import "sync"

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{
			ranges: make([]Range, 0, 64),
		}
	},
}

// New returns a pooled Scanner configured with opts.
func New(opts Options) *Scanner {
	s := scannerPool.Get().(*Scanner)
	s.configure(opts)
	return s
}

// Release resets s and returns it to the pool. Ranges previously returned by
// s must not be used afterwards.
func (s *Scanner) Release() {
	s.reset(nil)
	s.counter = nil
	if cap(s.ranges) > 1024 { // Don't pool very large slices
		s.ranges = make([]Range, 0, 64)
	}
	scannerPool.Put(s)
}
