// Package utils provides small generic helpers shared by feature packages,
// such as batching slices and summing value groups.
package utils
