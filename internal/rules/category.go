package rules

import (
	"fmt"
	"strings"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// Criterion ids the field matchers report under.
const (
	CriterionCategory    = "category_selection"
	CriterionSubcategory = "subcategory_selection"
	CriterionService     = "service_selection"
	CriterionCI          = "ci_selection"
)

const (
	partialMatchPenalty    = 2
	unmatchedParentPenalty = 5
)

// CategoryMatcher validates the classification fields against the static
// taxonomy. Values absent from the taxonomy are assumed correct: the rules
// cannot assess novel values, and the judge criteria catch genuine errors.
type CategoryMatcher struct {
	taxonomy *Taxonomy
}

// NewCategoryMatcher returns a matcher over the given taxonomy.
func NewCategoryMatcher(tx *Taxonomy) *CategoryMatcher {
	if tx == nil {
		tx = DefaultTaxonomy()
	}
	return &CategoryMatcher{taxonomy: tx}
}

// EvaluateCategory scores the category field.
func (m *CategoryMatcher) EvaluateCategory(t ticket.Ticket, maxPoints int) rubric.CriterionOutcome {
	category := m.taxonomy.Normalize(t.Category)

	if category == "" {
		return rubric.NumericOutcome(CriterionCategory, 0, maxPoints,
			"No category selected",
			"Category is empty or missing",
			"Always select an appropriate category for the incident")
	}

	if _, ok := m.taxonomy.Categories[category]; ok {
		return rubric.NumericOutcome(CriterionCategory, maxPoints, maxPoints,
			fmt.Sprintf("Category: %q", t.Category),
			"Category exists in the service desk taxonomy",
			"")
	}

	for known := range m.taxonomy.Categories {
		if strings.Contains(known, category) || strings.Contains(category, known) {
			return rubric.NumericOutcome(CriterionCategory, maxPoints-partialMatchPenalty, maxPoints,
				fmt.Sprintf("Category: %q (similar to %q)", t.Category, known),
				fmt.Sprintf("Category similar to known category '%s'", known),
				fmt.Sprintf("Consider using standard category '%s'", known))
		}
	}

	// Unknown value: assume correct, the judge criterion adjusts if needed.
	return rubric.NumericOutcome(CriterionCategory, maxPoints, maxPoints,
		fmt.Sprintf("Category: %q (not in standard taxonomy)", t.Category),
		"Category not in standard list - may be a valid custom category",
		"")
}

// EvaluateSubcategory scores the subcategory field against the category's
// allowed subcategories.
func (m *CategoryMatcher) EvaluateSubcategory(t ticket.Ticket, maxPoints int) rubric.CriterionOutcome {
	category := m.taxonomy.Normalize(t.Category)
	subcategory := strings.ToLower(strings.TrimSpace(t.Subcategory))

	if subcategory == "" {
		return rubric.NumericOutcome(CriterionSubcategory, 0, maxPoints,
			"No subcategory selected",
			"Subcategory is empty or missing",
			"Always select an appropriate subcategory for the incident")
	}

	validSubs, known := m.taxonomy.Categories[category]
	if !known {
		return rubric.NumericOutcome(CriterionSubcategory, maxPoints, maxPoints,
			fmt.Sprintf("Subcategory: %q under %q", t.Subcategory, t.Category),
			"Cannot validate - category not in standard taxonomy",
			"")
	}

	for _, valid := range validSubs {
		if subcategory == valid {
			return rubric.NumericOutcome(CriterionSubcategory, maxPoints, maxPoints,
				fmt.Sprintf("Subcategory: %q under %q", t.Subcategory, t.Category),
				"Subcategory matches category and exists in taxonomy",
				"")
		}
	}
	for _, valid := range validSubs {
		if strings.Contains(valid, subcategory) || strings.Contains(subcategory, valid) {
			return rubric.NumericOutcome(CriterionSubcategory, maxPoints-partialMatchPenalty, maxPoints,
				fmt.Sprintf("Subcategory: %q (similar to %q)", t.Subcategory, valid),
				fmt.Sprintf("Subcategory similar to '%s'", valid),
				fmt.Sprintf("Consider using standard subcategory '%s'", valid))
		}
	}

	preview := validSubs
	if len(preview) > 5 {
		preview = preview[:5]
	}
	return rubric.NumericOutcome(CriterionSubcategory, maxPoints-unmatchedParentPenalty, maxPoints,
		fmt.Sprintf("Subcategory: %q under %q", t.Subcategory, t.Category),
		fmt.Sprintf("Subcategory '%s' not in the expected list for '%s'", subcategory, category),
		fmt.Sprintf("Review subcategory options for the '%s' category: %s...", category, strings.Join(preview, ", ")))
}

// EvaluateService scores the business service reference. The value is an
// opaque reference, so presence is all the rules can check.
func (m *CategoryMatcher) EvaluateService(t ticket.Ticket, maxPoints int) rubric.CriterionOutcome {
	return m.evaluateReference(CriterionService, "service", "business service", t.BusinessService, maxPoints)
}

// EvaluateCI scores the configuration item reference.
func (m *CategoryMatcher) EvaluateCI(t ticket.Ticket, maxPoints int) rubric.CriterionOutcome {
	return m.evaluateReference(CriterionCI, "configuration item", "configuration item", t.ConfigItem, maxPoints)
}

func (m *CategoryMatcher) evaluateReference(criterionID, short, long, value string, maxPoints int) rubric.CriterionOutcome {
	value = strings.TrimSpace(value)
	if value == "" {
		return rubric.NumericOutcome(criterionID, 0, maxPoints,
			fmt.Sprintf("No %s selected", short),
			fmt.Sprintf("The %s field is empty or missing", long),
			fmt.Sprintf("Select the appropriate %s for the incident", long))
	}

	evidence := fmt.Sprintf("%s reference: %s", strings.ToUpper(short[:1])+short[1:], value)
	if len(value) > 20 {
		evidence = fmt.Sprintf("%s reference: %s...", strings.ToUpper(short[:1])+short[1:], value[:20])
	}
	return rubric.NumericOutcome(criterionID, maxPoints, maxPoints,
		evidence,
		fmt.Sprintf("%s reference present - accuracy to be verified by the judge", strings.ToUpper(long[:1])+long[1:]),
		"")
}
