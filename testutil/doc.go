// Package testutil provides deterministic test data generation shared by
// the package tests.
package testutil
