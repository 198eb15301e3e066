// Package oracle defines the adapter between the DD engine and an
// external scalar-LP solver: a typed Probe call, a four-valued failure
// taxonomy, and an Adapter that wraps any Oracle with call-count and
// wall-time instrumentation.
package oracle
