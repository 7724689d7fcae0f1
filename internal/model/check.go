package model

import "fmt"

type CheckResultType int

const (
	CheckOK CheckResultType = iota
	CheckWarn
	CheckErr
)

func (t CheckResultType) String() string {
	switch t {
	case CheckOK:
		return "OK"
	case CheckWarn:
		return "WARN"
	case CheckErr:
		return "ERROR"
	default:
		return fmt.Sprintf("unknown check result type: %d", int(t))
	}
}

// CheckResult is one finding of a consistency check. ResourceName is a JSON pointer into the collection.
type CheckResult struct {
	Typ          CheckResultType
	ResourceName string
	Message      string
}

func (r CheckResult) String() string {
	return fmt.Sprintf("%s\t%s\t%s", r.Typ, r.ResourceName, r.Message)
}
