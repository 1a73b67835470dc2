// Package score ranks two sightings of the same unique item.
package score
