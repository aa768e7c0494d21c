package binder

import "strconv"

// Bound is the result of matching tokens against a signature.
type Bound struct {
	command    string
	help       bool
	positional map[string]string
	rest       []string
	flags      map[string]string
}

// Command returns the name of the bound command.
func (b *Bound) Command() string {
	return b.command
}

// Help reports whether the help flag was supplied.
func (b *Bound) Help() bool {
	return b.help
}

// Positional returns the value bound to the named positional.
func (b *Bound) Positional(name string) (string, bool) {
	v, ok := b.positional[name]
	return v, ok
}

// Rest returns the tokens captured by the rest positional.
func (b *Bound) Rest() []string {
	return b.rest
}

// HasFlag returns true if the flag was supplied.
func (b *Bound) HasFlag(name string) bool {
	_, ok := b.flags[name]
	return ok
}

// FlagString returns the value of a flag, or defaultVal if not present.
func (b *Bound) FlagString(name, defaultVal string) string {
	if v, ok := b.flags[name]; ok {
		return v
	}
	return defaultVal
}

// FlagInt returns the integer value of a flag, or defaultVal if not
// present or invalid.
func (b *Bound) FlagInt(name string, defaultVal int) int {
	str, ok := b.flags[name]
	if !ok {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
