// Package dictionary defines the read-only prefix-tree contract the curve
// matcher requires of its dictionary collaborator, and ships a small
// in-memory reference implementation used by tests and by callers who do
// not need a packed on-disk trie format.
//
// The engine never depends on the concrete implementation: it only calls
// Root, Node.Children, Node.IsLeaf, Node.HasPayload and Node.Payload.
package dictionary
