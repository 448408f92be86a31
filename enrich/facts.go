package enrich

// RelatedEntity is an optional related-entity reference with a human label.
type RelatedEntity struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Facts holds optional supplementary attributes for one service, sourced
// from an external knowledge base. A zero field means the attribute was
// absent from the response; absence is never an error.
//
// Facts are constructed fresh per query response and not mutated after
// construction.
type Facts struct {
	// ExternalID is the knowledge-base entity identifier (e.g. a Wikidata
	// QID extracted from an entity URI).
	ExternalID string `json:"external_id"`

	// Label and Description supplement or override the classification
	// title and description when non-empty.
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`

	// IndustryRef and ProviderRef point at related entities.
	IndustryRef *RelatedEntity `json:"industry_ref,omitempty"`
	ProviderRef *RelatedEntity `json:"provider_ref,omitempty"`

	// InceptionDate is the entity's inception date as reported by the
	// knowledge base, in its original lexical form.
	InceptionDate string `json:"inception_date,omitempty"`

	// ImageURL references a representative image.
	ImageURL string `json:"image_url,omitempty"`

	// ArticleURL references an encyclopedia article about the entity.
	ArticleURL string `json:"article_url,omitempty"`
}
