// Package kernel contains shared value objects used across all domain
// aggregates. These are the building blocks of the domain model: immutable,
// validated, and created only through their constructor functions.
package kernel
