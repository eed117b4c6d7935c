package cli

import "strings"

// StringList is a repeatable string flag (e.g. -e pat1 -e pat2).
type StringList []string

func (s *StringList) String() string {
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
