package main

import "github.com/hupe1980/arenakit/strbuf"

const initialStackCap = 10

// stringStack is a LIFO stack of strings with manually managed storage.
// Capacity doubles when the stack fills.
type stringStack struct {
	data []*strbuf.String
	top  int
}

func newStringStack() *stringStack {
	return &stringStack{data: make([]*strbuf.String, initialStackCap)}
}

func (s *stringStack) resize() {
	grown := make([]*strbuf.String, 2*len(s.data))
	copy(grown, s.data[:s.top])
	s.data = grown
}

func (s *stringStack) push(text string) {
	if s.top == len(s.data) {
		s.resize()
	}
	s.data[s.top] = strbuf.FromString(text)
	s.top++
}

// pop removes and returns the top entry.
func (s *stringStack) pop() (string, bool) {
	if s.top == 0 {
		return "", false
	}
	s.top--
	v := s.data[s.top]
	s.data[s.top] = nil
	return v.String(), true
}

// back returns the top entry without removing it.
func (s *stringStack) back() (string, bool) {
	if s.top == 0 {
		return "", false
	}
	return s.data[s.top-1].String(), true
}

func (s *stringStack) size() int { return s.top }

func (s *stringStack) clear() {
	for i := 0; i < s.top; i++ {
		s.data[i] = nil
	}
	s.top = 0
}
