package intelligence

import (
	"fmt"
	"strings"
)

// buildSlotSystemPrompt describes the slot schema and the allowed regions.
func buildSlotSystemPrompt(allowedRegions []string) string {
	var b strings.Builder
	b.WriteString("You extract trip details from a Korean rural work-and-travel request.\n")
	b.WriteString("Respond with ONE JSON object and nothing else. Schema:\n")
	b.WriteString(`{
  "region": string,            // one of the allowed regions, or "" if none is mentioned
  "activity_types": [string],  // farm work or crops the user wants (e.g. "사과", "수확")
  "duration_days": int|null,   // trip length in days; 3박4일 is 4, 일주일 is 7
  "start_month": int|null,     // 1-12 when a month or season is given
  "landscapes": [string],      // preferred scenery (e.g. "바다", "산")
  "travel_styles": [string],   // preferred travel style (e.g. "힐링", "체험")
  "confidence": number         // 0.0-1.0, how sure you are about the whole object
}
`)
	b.WriteString("Rules:\n")
	b.WriteString("- Never invent a region that is not in the allowed list.\n")
	b.WriteString("- Use null, not 0, for a missing duration or month.\n")
	b.WriteString("- Do not add comments or explanations.\n")
	fmt.Fprintf(&b, "Allowed regions: %s\n", strings.Join(allowedRegions, ", "))
	return b.String()
}
