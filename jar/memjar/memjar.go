// Package memjar provides an in-memory jar for tests and server-side
// seeding.
package memjar

import (
	"sync"

	statejar "github.com/statejar/statejar"
)

// Jar stores raw name/value pairs plus the attributes of the last write.
type Jar struct {
	mu     sync.Mutex
	values map[string]string
	attrs  map[string]statejar.Attributes
	writes int
}

var _ statejar.Jar = (*Jar)(nil)

// New returns an empty jar.
func New() *Jar {
	return &Jar{
		values: map[string]string{},
		attrs:  map[string]statejar.Attributes{},
	}
}

// Seed pre-populates an entry without counting as a transport write.
func (j *Jar) Seed(name, value string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.values[name] = value
}

// Get returns the stored raw string for name.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	v, ok := j.values[name]
	return v, ok
}

// Set records the value and attributes of a transport write.
func (j *Jar) Set(name, value string, attrs statejar.Attributes) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.values[name] = value
	j.attrs[name] = attrs
	j.writes++
	return nil
}

// Writes reports how many transport writes happened.
func (j *Jar) Writes() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.writes
}

// Attrs returns the attributes of the last write for name.
func (j *Jar) Attrs(name string) (statejar.Attributes, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	a, ok := j.attrs[name]
	return a, ok
}

// Len reports the number of stored entries.
func (j *Jar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.values)
}
