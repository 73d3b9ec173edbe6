package clibase

import "fmt"

// SliceValue appends each value to a *[]string (for repeatable flags).
type SliceValue struct{ Dst *[]string }

func (s *SliceValue) String() string {
	if s.Dst == nil {
		return ""
	}
	return fmt.Sprint(*s.Dst)
}

func (s *SliceValue) Set(v string) error {
	*s.Dst = append(*s.Dst, v)
	return nil
}
