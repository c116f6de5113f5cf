package summarizer

import "fmt"

const (
	// Low temperature keeps summaries consistent across chunks.
	summaryTemperature = 0.3

	// The reduce call gets a larger output budget than a per-chunk call
	// since it has to carry the whole document.
	chunkMaxTokens  = 8192
	reduceMaxTokens = 16384
)

func chunkSystem(language string) string {
	return fmt.Sprintf(`You are a professional text summarization assistant. Analyze the given text in depth and extract its core ideas and arguments.
Requirements:
1. Focus on the core viewpoints, arguments and claims in the text
2. Include concrete reasoning, cases and data where the text provides them
3. Write the summary in %s
4. Present each viewpoint or argument in its own paragraph
5. Keep the logic clear and the structure complete; do not oversimplify
6. If the text belongs to a specific domain (technology, science, business), stay precise and professional`, language)
}

func chunkPrompt(index, total int, chunk string) string {
	return fmt.Sprintf(`Summarize the following text (part %d of %d) in depth, focusing on viewpoints and arguments:

%s

Follow these requirements:
1. Extract the core viewpoints and main arguments
2. Include the concrete reasoning, cases, data or examples the text contains
3. Use separate paragraphs for each major viewpoint
4. Stay concrete; avoid abstract generalities
5. Keep the logic coherent and the viewpoints clear

Begin the summary:`, index, total, chunk)
}

func reduceSystem(language string) string {
	return fmt.Sprintf(`You are a professional text summarization assistant. Given summaries of multiple parts of a long text, produce one complete, coherent and concrete overall summary.
Requirements:
1. Integrate all part summaries into one logically clear whole
2. Focus on the core viewpoints, arguments and claims
3. Preserve concrete reasoning, cases, data and examples
4. Present each major viewpoint in its own paragraph
5. Remove duplicated information but keep important detail
6. Keep the summary complete and coherent
7. Write the summary in %s
8. Make sure the summary fully and concretely reflects the source's core content`, language)
}

func reducePrompt(combined string) string {
	return fmt.Sprintf(`Below are summaries of the individual parts of a long text:

%s

Based on these part summaries, produce one complete, coherent and concrete overall summary:
1. Integrate all key information and viewpoints into a logically clear summary
2. Highlight the core viewpoints and main arguments with their concrete reasoning
3. Keep any cases, data or examples the part summaries contain
4. Use separate, clearly structured paragraphs per major viewpoint
5. Remove duplicated content but keep the concrete detail behind each viewpoint
6. Stay concrete; avoid abstract generalities
7. Keep the structure complete, the language fluent and the viewpoints clear

Produce the detailed, paragraph-structured summary:`, combined)
}
