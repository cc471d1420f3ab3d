// Package prompt renders the system and user prompts for an analysis run.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pkhlegal/legalbrain/internal/knowledge"
	"github.com/pkhlegal/legalbrain/internal/llm"
	"github.com/pkhlegal/legalbrain/internal/rules"
)

// maxPromptChunks caps how many chunks are rendered into the user prompt.
// Chunks beyond the cap are silently omitted.
const maxPromptChunks = 50

const nickSystem = `You are **PKH Legal Brain**, assisting UK property students to triage auction legal packs.
Voice: **Nick Ellsmore** — direct, clear, professional, UK-sceptical, no fluff.
Output must be accurate, referenced, and pragmatic.

Rules:
- For each claim, cite Document Type and Page number in square brackets, e.g., [Lease p.12].
- Prioritise: RED (deal-breakers) → AMBER (mitigations) → GREEN (standard).
- If information is missing, explicitly list questions to ask the auctioneer/solicitor.
- End with a 10-point action list for a beginner to follow.
- Do not name any AI vendor; brand as PKH Legal Brain.
- Include a short executive summary first in Nick's voice.
`

// Build renders the prompt pair from the enriched context and the enabled
// rules. The rules addendum is empty when no rules are enabled.
func Build(ctx knowledge.Context, enabled []rules.Rule) llm.Prompt {
	var user strings.Builder
	user.WriteString("# PKH Checklist\n")
	user.WriteString(ctx.KB.Checklist)
	user.WriteString("\n\n# Glossary\n")
	user.WriteString(ctx.KB.Glossary)
	user.WriteString("\n\n# Gotchas\n")
	user.WriteString(ctx.KB.Gotchas)
	user.WriteString("\n\n# Extracted Chunks (sample)\n")

	chunks := ctx.Chunks
	if len(chunks) > maxPromptChunks {
		chunks = chunks[:maxPromptChunks]
	}
	for i, c := range chunks {
		if i > 0 {
			user.WriteString("\n\n")
		}
		fmt.Fprintf(&user, "[#%03d %s p.%d]\n%s", i, c.Meta.DocType, c.Meta.Page, c.Content)
	}

	return llm.Prompt{
		System: nickSystem + rulesAddendum(enabled),
		User:   user.String(),
	}
}

// rulesAddendum renders the user-defined directives grouped by rule type.
// Each section is absent when its category has no rules.
func rulesAddendum(enabled []rules.Rule) string {
	var excludes, overrides, instructions []rules.Rule
	for _, r := range enabled {
		switch r.RuleType {
		case rules.ExcludeWord:
			excludes = append(excludes, r)
		case rules.SeverityOverride:
			overrides = append(overrides, r)
		case rules.CustomInstruction:
			instructions = append(instructions, r)
		}
	}
	if len(excludes) == 0 && len(overrides) == 0 && len(instructions) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\nAdditional rules from the PKH dashboard:\n")

	if len(excludes) > 0 {
		terms := make([]string, len(excludes))
		for i, r := range excludes {
			terms[i] = fmt.Sprintf("%q", r.Value)
		}
		fmt.Fprintf(&sb, "- Never use these terms or phrases in your output: %s.\n", strings.Join(terms, ", "))
	}

	for _, r := range overrides {
		severity := r.Severity
		if severity == "" {
			severity = rules.SeverityAmber
		}
		fmt.Fprintf(&sb, "- Always treat %q as %s severity.", r.Value, strings.ToUpper(string(severity)))
		if r.Instruction != "" {
			fmt.Fprintf(&sb, " %s", r.Instruction)
		}
		sb.WriteString("\n")
	}

	for _, r := range instructions {
		fmt.Fprintf(&sb, "- %s", r.Value)
		if r.Instruction != "" {
			fmt.Fprintf(&sb, " %s", r.Instruction)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
