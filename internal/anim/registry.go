package anim

import (
	"fmt"
	"strings"
)

// PatternID identifies one of the animated design patterns.
type PatternID int

const (
	Singleton PatternID = iota
	FactoryMethod
	AbstractFactory
	Prototype
	Builder
	Adapter
	Bridge
	Composite
	Decorator
	Facade
	Flyweight
	Proxy
	State
	numPatterns
)

var patternNames = [numPatterns]string{
	Singleton:       "singleton",
	FactoryMethod:   "factory method",
	AbstractFactory: "abstract factory",
	Prototype:       "prototype",
	Builder:         "builder",
	Adapter:         "adapter",
	Bridge:          "bridge",
	Composite:       "composite",
	Decorator:       "decorator",
	Facade:          "facade",
	Flyweight:       "flyweight",
	Proxy:           "proxy",
	State:           "state",
}

// Factory builds a fresh choreography.
type Factory func() Choreography

var registry = [numPatterns]Factory{
	Singleton:       func() Choreography { return &singleton{} },
	FactoryMethod:   func() Choreography { return &factoryMethod{} },
	AbstractFactory: func() Choreography { return &abstractFactory{} },
	Prototype:       func() Choreography { return &prototype{} },
	Builder:         func() Choreography { return &builder{} },
	Adapter:         func() Choreography { return &adapter{} },
	Bridge:          func() Choreography { return &bridge{} },
	Composite:       func() Choreography { return &composite{} },
	Decorator:       func() Choreography { return &decorator{} },
	Facade:          func() Choreography { return &facade{} },
	Flyweight:       func() Choreography { return &flyweight{} },
	Proxy:           func() Choreography { return &proxy{} },
	State:           func() Choreography { return &trafficLight{} },
}

var byName = func() map[string]PatternID {
	m := make(map[string]PatternID, numPatterns)
	for id, name := range patternNames {
		m[name] = PatternID(id)
	}
	return m
}()

// Key is the normalized registry key for a display name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup resolves a pattern display name case-insensitively.
func Lookup(name string) (PatternID, bool) {
	id, ok := byName[Key(name)]
	return id, ok
}

// Patterns lists every registered pattern in declaration order.
func Patterns() []PatternID {
	ids := make([]PatternID, numPatterns)
	for i := range ids {
		ids[i] = PatternID(i)
	}
	return ids
}

func (id PatternID) Valid() bool {
	return id >= 0 && id < numPatterns
}

func (id PatternID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("PatternID(%d)", int(id))
	}
	return patternNames[id]
}

// Slug is the name with spaces replaced by underscores, used in file names.
func (id PatternID) Slug() string {
	return strings.ReplaceAll(id.String(), " ", "_")
}

// NewChoreography builds the choreography registered for id.
func NewChoreography(id PatternID) (Choreography, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("no choreography for %v", id)
	}
	return registry[id](), nil
}
