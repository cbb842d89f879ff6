package mocks

// SetupTransport creates a new mock, calls the setup function on it, and returns it
func SetupTransport(setup func(m *Transport)) *Transport {
	m := &Transport{}
	if setup != nil {
		setup(m)
	}
	return m
}
