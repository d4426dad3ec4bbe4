// Package statsview serves live runtime statistics (heap, goroutines, GC)
// over HTTP while the emulator runs. The server is only compiled in with the
// statsview build tag; otherwise Available reports false and Launch does
// nothing.
//
// After launch the charts are at
//
//	localhost:18066/debug/statsview
//
// and the standard pprof endpoints at
//
//	localhost:18066/debug/pprof/
package statsview

const Address = "localhost:18066"
const url = "/debug/statsview"
