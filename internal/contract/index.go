package contract

// DocumentTitle is the display title of the fixed demo contract.
const DocumentTitle = "Master SaaS Agreement"

// Preamble opens the document; it is not a clause and is never searched.
const Preamble = `This Agreement is made on Jan 1, 2026 between SoftCo, Inc. ("Provider") and Acme Corporation ("Customer").`

// corpus is the fixed demo contract. Order is document order and is part
// of the search tie-break contract, so never reorder entries.
var corpus = []Clause{
	{
		ID:    "clause-2-term",
		Title: "Term",
		Type:  TypeTerm,
		Text:  "12 months from Effective Date.",
	},
	{
		ID:    "clause-5-service-levels",
		Title: "Service Levels",
		Type:  TypeServiceLevels,
		Text:  "Provider maintains 99.9% monthly uptime. Service credits are provided per Schedule A if this threshold is not met.",
	},
	{
		ID:    "clause-4-payment",
		Title: "Payment Terms",
		Type:  TypePayment,
		Text:  "Payment due within 30 days of invoice (Net-30).",
	},
	{
		ID:    "clause-8-liability",
		Title: "Limitation of Liability",
		Type:  TypeLiability,
		Text:  "Each party's liability is capped at the total fees paid under this Agreement in the twelve months preceding the claim.",
	},
	{
		ID:    "clause-12-governing-law",
		Title: "Governing Law",
		Type:  TypeGoverningLaw,
		Text:  "This Agreement shall be governed by the laws of the State of New York, USA.",
	},
}

// Index is an ordered, immutable collection of clauses.
type Index struct {
	clauses  []Clause
	byAnchor map[string]int
}

// NewIndex builds an index over the fixed corpus.
func NewIndex() *Index {
	return newIndex(corpus)
}

// newIndex builds an index over an arbitrary clause slice. Exposed to
// tests via NewIndexFor so scoring scenarios can use small corpora.
func newIndex(clauses []Clause) *Index {
	byAnchor := make(map[string]int, len(clauses))
	for i, c := range clauses {
		byAnchor[c.ID] = i
	}
	return &Index{clauses: clauses, byAnchor: byAnchor}
}

// NewIndexFor builds an index over the given clauses.
func NewIndexFor(clauses []Clause) *Index {
	return newIndex(clauses)
}

// All returns the clauses in document order. Callers must not mutate
// the returned slice.
func (ix *Index) All() []Clause {
	return ix.clauses
}

// Len returns the number of clauses in the index.
func (ix *Index) Len() int {
	return len(ix.clauses)
}

// ByAnchor returns the clause with the given anchor id.
func (ix *Index) ByAnchor(id string) (Clause, bool) {
	i, ok := ix.byAnchor[id]
	if !ok {
		return Clause{}, false
	}
	return ix.clauses[i], true
}

// Types returns the clause types present in the index, in document order,
// deduplicated. Used to populate the search filter.
func (ix *Index) Types() []ClauseType {
	seen := make(map[ClauseType]bool, len(ix.clauses))
	types := make([]ClauseType, 0, len(ix.clauses))
	for _, c := range ix.clauses {
		if !seen[c.Type] {
			seen[c.Type] = true
			types = append(types, c.Type)
		}
	}
	return types
}
