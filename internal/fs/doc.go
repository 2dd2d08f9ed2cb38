// Package fs abstracts the file system operations of the local blob store
// so its failure paths can be tested.
//
// The package defines two key interfaces:
//
//   - [File]: a writable handle as returned by CreateTemp
//   - [FileSystem]: the operations the store performs
//
// # Implementations
//
//   - [LocalFS]: production implementation using the standard os package
//   - [FaultyFS]: test utility that injects errors into the write path
//
// Production code should use fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.Fail(fs.Fault{Write: true})
//	// inject ffs into the store under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are fast and non-interruptible at the syscall
// level. Remote stores with meaningful cancellation implement the blobstore
// interfaces directly.
package fs
