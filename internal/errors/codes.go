package errors

// Diagnostic codes for connlint
// These codes are attached to every finding so tooling and editors
// can identify a rule without matching on message text.
//
// Code ranges:
// L0001-L0019: Source safety errors
// L0020-L0039: Event signature errors
// L0040-L0059: Documentation errors
// L0060-L0079: Convention errors
// W0001-W0099: Warning codes

const (
	// L0001: Deny-listed primitive found in the import closure
	ErrorForbiddenPattern = "L0001"

	// L0020: Logged event has no declaration
	ErrorEventMissing = "L0020"

	// L0021: Logged and declared argument counts differ
	ErrorArgumentCount = "L0021"

	// L0022: Logged argument does not start with the declared type
	ErrorInvalidArgument = "L0022"

	// L0023: Logged event declared more than once
	ErrorDuplicateEvent = "L0023"

	// L0040: Function argument without @param
	ErrorMissingParam = "L0040"

	// L0041: Function without a required NatSpec tag
	ErrorMissingTag = "L0041"

	// L0042: Contract head comment without a required NatSpec tag
	ErrorMissingHeadTag = "L0042"

	// L0060: Public or external function not marked payable
	ErrorNotPayable = "L0060"

	// L0061: Connector without a public name variable
	ErrorMissingName = "L0061"

	// W0001: Declared events never logged
	WarningUnusedEvent = "W0001"

	// W0002: Connector without an events module
	WarningMissingEventsFile = "W0002"
)

// GetErrorDescription returns a human-readable description of the code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorForbiddenPattern:
		return "A deny-listed primitive appears in the connector or one of its imports"
	case ErrorEventMissing:
		return "A logging call names an event that events.sol does not declare"
	case ErrorArgumentCount:
		return "A logging call passes a different number of arguments than the event declares"
	case ErrorInvalidArgument:
		return "A logging call argument does not match the declared argument type"
	case ErrorDuplicateEvent:
		return "A logged event name is declared more than once in events.sol"
	case ErrorMissingParam:
		return "A function argument is not documented with @param"
	case ErrorMissingTag:
		return "A logging function is missing @dev or @notice"
	case ErrorMissingHeadTag:
		return "The contract head comment is missing @title or @dev"
	case ErrorNotPayable:
		return "A public or external function is not payable"
	case ErrorMissingName:
		return "The connector does not declare a public string name"
	case WarningUnusedEvent:
		return "Events are declared but never logged"
	case WarningMissingEventsFile:
		return "The connector has no events.sol"
	default:
		return "Unknown diagnostic code"
	}
}

// IsWarning returns true if the code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the diagnostic based on its code
func GetErrorCategory(code string) string {
	switch {
	case len(code) == 0:
		return "Unknown"
	case code[0] == 'W':
		return "Warning"
	case code >= "L0001" && code < "L0020":
		return "Safety"
	case code >= "L0020" && code < "L0040":
		return "Events"
	case code >= "L0040" && code < "L0060":
		return "Documentation"
	case code >= "L0060" && code < "L0080":
		return "Convention"
	default:
		return "Unknown"
	}
}
