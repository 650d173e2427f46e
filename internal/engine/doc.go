// Package engine manages gitflow branch state for a repository.
//
// It is the core of gfm, responsible for:
//   - Classifying branches by gitflow kind (feature, release, hotfix)
//   - Answering queries about branch bases, merge state, and tags
//   - Executing branch lifecycle operations (start, finish steps)
//
// The engine works against a git.Runner so it can run on a real repository
// or a mock in tests.
package engine
