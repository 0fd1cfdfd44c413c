package services

import "fmt"

const reflectionPromptTemplate = `Today's date is %s.
Identify the Catholic Feast/Day, Season, and traditional Color.
Provide the main Scripture of the day, a daily Virtue, a concrete Action Item to practice it, a 3-sentence Reflection, and a short Prayer.
Return ONLY a JSON object:
{ "feast": "Title", "season": "SeasonName", "color": "colorname", "scripture": "Verse text", "verse_ref": "Reference", "virtue": "Word: Action", "action": "Concrete action...", "reflection": "...", "prayer": "Short prayer..." }`

// BuildReflectionPrompt renders the generation prompt for date. The same date
// always yields the same text.
func BuildReflectionPrompt(date string) string {
	return fmt.Sprintf(reflectionPromptTemplate, date)
}
