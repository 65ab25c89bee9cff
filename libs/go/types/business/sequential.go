package business

// DateFormat is the date bucket token embedded in a sequential number
type DateFormat string

const (
	DateFormatYY     DateFormat = "yy"
	DateFormatYYYY   DateFormat = "yyyy"
	DateFormatYYMM   DateFormat = "yy-MM"
	DateFormatYYYYMM DateFormat = "yyyy-MM"
)

// Sequential describes a document numbering scheme: prefix, date bucket and counter
type Sequential struct {
	Prefix          string     `json:"prefix"`
	DynamicSequence DateFormat `json:"dynamicSequence"`
	Next            int        `json:"next"`
}

// SequenceUpdate is pushed when the backend allocates a new counter value
type SequenceUpdate struct {
	Value int `json:"value"`
}
