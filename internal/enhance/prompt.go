package enhance

import (
	"fmt"
	"strconv"
	"strings"

	"property_brochure_backend/internal/domain"
)

const promptIntro = "You are a professional estate agent copywriter specializing in luxury property marketing."

const promptInstructions = `Please provide a comprehensive property marketing analysis in JSON format with the following structure:

{
  "enhanced_description": "A compelling, detailed property description that highlights unique selling points, lifestyle benefits, and emotional appeal. Write in professional yet engaging British English.",
  "market_analysis": "Professional market analysis including location benefits, investment potential, comparable properties, and market trends. Include specific data points where possible.",
  "key_features": ["List of 5-8 key features that make this property stand out"],
  "target_buyer": "Detailed profile of the ideal buyer for this property",
  "investment_potential": "Analysis of the property's investment potential, growth prospects, and rental yield estimates"
}

Ensure the content is:
- Professional and sophisticated
- Factual yet persuasive
- Tailored to the UK property market
- Free of any assumptions about features not mentioned
- Focused on the property's unique selling points`

// BuildPrompt renders the copywriter prompt. Optional attributes appear only
// when present and non-zero.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString("\n\nProperty Details:\n")
	fmt.Fprintf(&b, "- Address: %s\n", req.Address)
	fmt.Fprintf(&b, "- Type: %s\n", req.PropertyType)
	if req.Bedrooms != nil && *req.Bedrooms != 0 {
		fmt.Fprintf(&b, "- Bedrooms: %d\n", *req.Bedrooms)
	}
	if req.Bathrooms != nil && *req.Bathrooms != 0 {
		fmt.Fprintf(&b, "- Bathrooms: %d\n", *req.Bathrooms)
	}
	if req.Size != nil && *req.Size != 0 {
		fmt.Fprintf(&b, "- Size: %s sq ft\n", strconv.FormatFloat(*req.Size, 'f', -1, 64))
	}
	if req.Price != nil && *req.Price != 0 {
		fmt.Fprintf(&b, "- Price: %s\n", domain.FormatGBP(*req.Price))
	}
	if len(req.Features) > 0 {
		fmt.Fprintf(&b, "- Features: %s\n", strings.Join(req.Features, ", "))
	}
	if req.Description != "" {
		fmt.Fprintf(&b, "- Current Description: %s\n", req.Description)
	}
	b.WriteString("\n")
	b.WriteString(promptInstructions)
	return b.String()
}
