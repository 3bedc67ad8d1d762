// Package program holds the loaded instruction sequence and the bracket
// matching rules that operate on it.
//
// Loading never validates: any byte is accepted and is only rejected when the
// engine tries to dispatch it. Validate and Filter are available for callers
// that want to enforce or coerce the instruction alphabet up front.
//
// Bracket partners are found by a linear scan from the bracket each time a jump
// is taken. Nothing is precomputed at load time.
package program
