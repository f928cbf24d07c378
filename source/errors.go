package source

// OpenError records the name a Source failed to open.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return "source: open " + e.Name + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }
