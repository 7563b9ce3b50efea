// Package scaffold creates numbered feature branches and their spec
// directories.
//
// A feature is a branch named NNN-slug plus a directory specs/NNN-slug/
// holding its spec and planning files. The number is allocated as one
// past the highest number found in either the specs directory or the
// local branch list, so deleting a spec directory never recycles a
// number that still has a branch.
package scaffold
