package domain

// Slot identifies one of the two display positions shown to the rater.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

func (s Slot) Valid() bool {
	return s == SlotA || s == SlotB
}

// Item is one comparable triplet discovered on disk: a reference frame plus
// the same filename rendered by both result sets. Immutable after discovery.
type Item struct {
	Category  string `json:"category"`
	Filename  string `json:"filename"`
	Reference string `json:"-"`
	// Results holds the two depth-map paths, index-aligned with the
	// configured model names.
	Results [2]string `json:"-"`
}

// Presentation is the pinned slot layout for a single trial. AResult is the
// result-set index shown in slot A; slot B shows the other one.
type Presentation struct {
	AResult int
}

// ResultIndex resolves a display slot to a result-set index.
func (p Presentation) ResultIndex(s Slot) int {
	if s == SlotA {
		return p.AResult
	}
	return 1 - p.AResult
}

// Judgment is one recorded forced choice. ChosenModel is the result set's
// original identity, never the display slot it happened to occupy.
type Judgment struct {
	RaterName   string `json:"rater_name"`
	Filename    string `json:"filename"`
	Category    string `json:"category"`
	ChosenModel string `json:"chosen_model"`
}
