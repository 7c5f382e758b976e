package model

// WhiskeyInfo is the best-effort structured result of a free-text whiskey
// lookup. Only Name, Description and Found are guaranteed; everything else
// is filled in when the enrichment text happens to be parseable.
type WhiskeyInfo struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Found        bool          `json:"found"`
	IsDistillery bool          `json:"is_distillery"`
	Distillery   *string       `json:"distillery,omitempty"`
	Region       *string       `json:"region,omitempty"`
	Country      *string       `json:"country,omitempty"`
	TasteProfile *TasteProfile `json:"taste_profile,omitempty"`
}

type TasteProfile struct {
	Nose   *string `json:"nose,omitempty"`
	Palate *string `json:"palate,omitempty"`
	Finish *string `json:"finish,omitempty"`
}
