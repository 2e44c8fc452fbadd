// Package upload pushes a loaded dataset into a vector store in fixed-size
// sequential batches.
//
// This package owns the batch loop, the error reporting for failed batches,
// and the machine-readable progress lines consumers parse from stdout.
package upload
