package text

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce = sync.OnceValues(func() (*FontSource, error) { return NewFontSource(goregular.TTF) })
	boldOnce    = sync.OnceValues(func() (*FontSource, error) { return NewFontSource(gobold.TTF) })
)

// Regular returns the shared Go Regular font source.
func Regular() (*FontSource, error) { return regularOnce() }

// Bold returns the shared Go Bold font source.
func Bold() (*FontSource, error) { return boldOnce() }
