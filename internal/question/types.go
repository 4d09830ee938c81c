package question

// Variant selects how a deck is judged.
type Variant string

const (
	// VariantAuto detects the variant from the deck contents.
	VariantAuto Variant = "auto"
	// VariantOpen reveals an answer and lets the player grade themselves.
	VariantOpen Variant = "open"
	// VariantChoice offers fixed options and grades against a key.
	VariantChoice Variant = "choice"
)

// Deck is the ordered, validated sequence of records for one session.
type Deck struct {
	Variant Variant
	Records []Record
}

// Len returns the number of records in the deck.
func (d Deck) Len() int {
	return len(d.Records)
}

// Record is a single immutable quiz entry. Its identity is its position in the deck.
type Record struct {
	Prompt string

	// Open-response fields.
	Answer string
	Info   string

	// Multiple-choice fields.
	Options      []string
	CorrectIndex int
}

// HasInfo reports whether the record carries an explanation to show.
func (r Record) HasInfo() bool {
	return r.Info != ""
}

// deckFile is the YAML/JSON deck schema.
type deckFile struct {
	Version   int           `json:"version" yaml:"version"`
	Variant   string        `json:"variant" yaml:"variant"`
	Questions []deckFileRow `json:"questions" yaml:"questions"`
}

type deckFileRow struct {
	Prompt       string   `json:"question" yaml:"question"`
	Answer       string   `json:"answer" yaml:"answer"`
	Info         string   `json:"info" yaml:"info"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex *int     `json:"correct_index" yaml:"correct_index"`

	// invalidIndex marks a correct index that failed to parse and was already reported.
	invalidIndex bool
}
