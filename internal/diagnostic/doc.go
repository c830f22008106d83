// Package diagnostic provides structured errors, warnings and notes
// collected while building and generating a schema snapshot.
//
// Every problem in a snapshot is collected before generation stops, so a
// single run reports all unknown types, invalid sizes and name collisions
// at once.
package diagnostic
