// Package knowledge carries the static PKH knowledge base attached to every
// analysis: the red-flag checklist, the glossary, and patterns from past
// deals. All three are process-wide constants.
package knowledge

import "github.com/pkhlegal/legalbrain/internal/chunker"

const Checklist = `
RED FLAGS:
- Doubling ground rent; ground rent > £250 outside London (>£1000 in London)
- Lease term < 80 years (marriage value triggers)
- Overage/uplift clauses
- Buyer pays seller costs / auction admin fees unusual
- Missing rights of access / services easements
- Section 20 major works liabilities
- Chancel repair liability
- Flood zone 3 or subsidence notices
- Uninsurable risks / restrictive covenants
`

const Glossary = `
- Office Copy Entry: Land Registry title extract.
- Title Plan: The mapped extent of the title boundaries.
- Special Conditions: Auction-specific terms that override standard ones.
`

const Gotchas = `
Patterns seen in past deals: hidden buyer premiums; short completion (10 business days);
service charge balancing charges; indemnity policies required; missing FENSA/GasSafe certificates.
`

// KB groups the three static text blocks.
type KB struct {
	Checklist string `json:"checklist"`
	Glossary  string `json:"glossary"`
	Gotchas   string `json:"gotchas"`
}

// Context is the chunk set plus the knowledge base, ready for prompting.
type Context struct {
	Chunks []chunker.Chunk `json:"chunks"`
	KB     KB              `json:"kb"`
}

// Enrich attaches the knowledge base to a chunk sequence. Chunks are not
// copied or mutated.
func Enrich(chunks []chunker.Chunk) Context {
	return Context{
		Chunks: chunks,
		KB: KB{
			Checklist: Checklist,
			Glossary:  Glossary,
			Gotchas:   Gotchas,
		},
	}
}
