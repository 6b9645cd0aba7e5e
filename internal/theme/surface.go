// internal/theme/surface.go
package theme

import (
	"sort"
	"strings"
	"sync"
)

// StylesheetSurface is the live presentation surface for the storefront: a
// flat variable namespace rendered as CSS custom properties plus the
// replaceable style and script blocks. Reads and writes are guarded because
// the storefront CSS handler reads while the applier writes.
type StylesheetSurface struct {
	mu        sync.RWMutex
	variables map[string]string
	style     string
	script    string
}

func NewStylesheetSurface() *StylesheetSurface {
	return &StylesheetSurface{variables: make(map[string]string)}
}

func (s *StylesheetSurface) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variables[name] = value
}

func (s *StylesheetSurface) ClearVariables() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variables = make(map[string]string)
}

func (s *StylesheetSurface) SetStyleBlock(css string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = css
}

func (s *StylesheetSurface) SetScriptBlock(js string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = js
}

// Variable returns the current value of one projected variable.
func (s *StylesheetSurface) Variable(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.variables[name]
	return value, ok
}

// Stylesheet renders the projection as a deterministic CSS document: a
// :root block of custom properties followed by the injected style block.
func (s *StylesheetSurface) Stylesheet() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.variables))
	for name := range s.variables {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		b.WriteString("  --")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.variables[name])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	if s.style != "" {
		b.WriteString("\n")
		b.WriteString(s.style)
		if !strings.HasSuffix(s.style, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ScriptBlock returns the injected script, empty when none (or when script
// injection is disabled platform-wide).
func (s *StylesheetSurface) ScriptBlock() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.script
}
