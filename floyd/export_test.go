package floyd

// SetSuccessor overwrites one successor cell so tests can simulate a corrupt
// successor matrix.
func (s *Solution) SetSuccessor(from, to, via int) {
	s.next[from*len(s.names)+to] = via
}
