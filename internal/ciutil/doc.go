// Package ciutil detects continuous integration environments and resolves
// the database URL used by integration tests, normalizing it to the
// credentials CI service containers are started with.
package ciutil
