package domain

// Validation reasons double as translation message ids.
const (
	ReasonRequired        = "fieldRequired"
	ReasonTooLong         = "fieldTooLong"
	ReasonNotInteger      = "fieldNotInteger"
	ReasonOutOfRange      = "fieldOutOfRange"
	ReasonTooSmall        = "fieldTooSmall"
	ReasonNotBoolean      = "fieldNotBoolean"
	ReasonNotUUID         = "fieldNotUUID"
	ReasonNotAllowed      = "fieldNotAllowed"
	ReasonNotNullable     = "fieldNotNullable"
	ReasonWrongType       = "fieldWrongType"
	ReasonEmptyUpdate     = "emptyUpdate"
	ReasonUnknownCategory = "unknownCategory"
	ReasonMalformedBody   = "malformedBody"
)
